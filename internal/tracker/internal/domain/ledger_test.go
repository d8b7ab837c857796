// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Trim(t *testing.T) {
	base := time.UnixMilli(1700000000000)
	testCases := []struct {
		name     string
		entries  func() []LedgerEntry
		capacity int
		wantPids []int64
	}{
		{
			name: "没有超过上限",
			entries: func() []LedgerEntry {
				return []LedgerEntry{
					{Pid: 2, Time: base.Add(time.Minute)},
					{Pid: 1, Time: base},
				}
			},
			capacity: 3,
			// 不超过上限不排序
			wantPids: []int64{2, 1},
		},
		{
			name: "超过上限，保留最近的",
			entries: func() []LedgerEntry {
				return []LedgerEntry{
					{Pid: 3, Time: base.Add(3 * time.Minute)},
					{Pid: 1, Time: base.Add(time.Minute)},
					{Pid: 4, Time: base.Add(4 * time.Minute)},
					{Pid: 2, Time: base.Add(2 * time.Minute)},
				}
			},
			capacity: 2,
			wantPids: []int64{3, 4},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := Ledger{Entries: tc.entries()}
			l.Trim(tc.capacity)
			pids := make([]int64, 0, len(l.Entries))
			for _, e := range l.Entries {
				pids = append(pids, e.Pid)
			}
			assert.Equal(t, tc.wantPids, pids)
		})
	}
}

func TestLedger_Trim250(t *testing.T) {
	base := time.UnixMilli(1700000000000)
	l := Ledger{}
	// 乱序插入 250 道不同的题目
	for i := 0; i < 250; i++ {
		pid := int64((i*7)%250 + 1)
		l.Entries = append(l.Entries, LedgerEntry{
			Pid:    pid,
			Status: StatusWA,
			Time:   base.Add(time.Duration(pid) * time.Second),
		})
	}
	l.Trim(LedgerCapacity)
	assert.Equal(t, LedgerCapacity, len(l.Entries))
	for i, e := range l.Entries {
		assert.Equal(t, int64(51+i), e.Pid)
	}
}

func TestLedger_DropPlatform(t *testing.T) {
	l := Ledger{Entries: []LedgerEntry{
		{Pid: 1, Platform: PlatformCodeforces},
		{Pid: 2, Platform: PlatformLeetcode},
		{Pid: 3, Platform: PlatformCodeforces},
	}}
	l.DropPlatform(PlatformCodeforces)
	assert.Equal(t, []LedgerEntry{{Pid: 2, Platform: PlatformLeetcode}}, l.Entries)
	_, ok := l.Find(1)
	assert.False(t, ok)
	idx, ok := l.Find(2)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

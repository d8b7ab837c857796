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

func TestRank(t *testing.T) {
	testCases := []struct {
		name     string
		pids     []int64
		capacity int
		want     []Item
	}{
		{
			name:     "空",
			capacity: DefaultCapacity,
			want:     []Item{},
		},
		{
			name:     "按照次数降序",
			pids:     []int64{1, 2, 1},
			capacity: DefaultCapacity,
			want:     []Item{{Pid: 1, Count: 2}, {Pid: 2, Count: 1}},
		},
		{
			name:     "次数相同按照 ID 升序",
			pids:     []int64{9, 3, 5, 3, 9},
			capacity: DefaultCapacity,
			want:     []Item{{Pid: 3, Count: 2}, {Pid: 9, Count: 2}, {Pid: 5, Count: 1}},
		},
		{
			name:     "超过容量",
			pids:     []int64{4, 3, 2, 1, 1},
			capacity: 2,
			want:     []Item{{Pid: 1, Count: 2}, {Pid: 2, Count: 1}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Rank(tc.pids, tc.capacity))
		})
	}
}

func TestSheet_Fresh(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	s := Sheet{Utime: t0}
	assert.True(t, s.Fresh(t0, DefaultTTL))
	assert.True(t, s.Fresh(t0.Add(DefaultTTL-time.Millisecond), DefaultTTL))
	assert.False(t, s.Fresh(t0.Add(DefaultTTL), DefaultTTL))
	assert.False(t, s.Fresh(t0.Add(time.Hour), DefaultTTL))
}

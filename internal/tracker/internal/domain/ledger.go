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
	"sort"
	"time"
)

const LedgerCapacity = 200

type LedgerEntry struct {
	// Pid 题目 ID
	Pid      int64
	Platform Platform
	Status   Status
	Time     time.Time
}

// Ledger 每个用户每道题只保留一条记录
type Ledger struct {
	Entries []LedgerEntry
	// LastUpdated 拉取截止时间，早于它的提交都视为已处理
	LastUpdated time.Time
}

func (l *Ledger) Find(pid int64) (int, bool) {
	for i := range l.Entries {
		if l.Entries[i].Pid == pid {
			return i, true
		}
	}
	return -1, false
}

// DropPlatform 换绑账号之后，旧账号的记录就没用了
func (l *Ledger) DropPlatform(platform Platform) {
	entries := l.Entries[:0]
	for _, e := range l.Entries {
		if e.Platform != platform {
			entries = append(entries, e)
		}
	}
	l.Entries = entries
}

// Trim 按照时间排序之后只保留最近的 capacity 条，顺序可能会变
func (l *Ledger) Trim(capacity int) {
	if len(l.Entries) <= capacity {
		return
	}
	sort.SliceStable(l.Entries, func(i, j int) bool {
		return l.Entries[i].Time.Before(l.Entries[j].Time)
	})
	l.Entries = l.Entries[len(l.Entries)-capacity:]
}

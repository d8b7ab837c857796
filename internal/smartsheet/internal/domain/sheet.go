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

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
)

const (
	DefaultTTL      = 10 * time.Minute
	DefaultCapacity = 200
)

type Item struct {
	Pid int64
	// Count 有多少个好友做过这道题，不区分结果
	Count int64
}

// Sheet 每次重建都整体替换
type Sheet struct {
	Uid   int64
	Items []Item
	Utime time.Time
}

// Fresh 在 Utime + ttl 之前都可以直接使用
func (s Sheet) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Before(s.Utime.Add(ttl))
}

// Rank 按照出现次数降序，次数相同的按照题目 ID 升序，最多保留 capacity 个
func Rank(pids []int64, capacity int) []Item {
	counts := make(map[int64]int64, len(pids))
	for _, pid := range pids {
		counts[pid]++
	}
	items := slice.Map(mapx.Keys(counts), func(idx int, pid int64) Item {
		return Item{Pid: pid, Count: counts[pid]}
	})
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Pid < items[j].Pid
	})
	if len(items) > capacity {
		items = items[:capacity]
	}
	return items
}

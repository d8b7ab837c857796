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

import "sort"

// Bundle 一个用户的全部统计数据，作为一个整体保存
type Bundle struct {
	Uid      int64
	Ledger   Ledger
	Profiles []PlatformProfile
}

// Profile 不存在就创建一个空的
func (b *Bundle) Profile(platform Platform) *PlatformProfile {
	for i := range b.Profiles {
		if b.Profiles[i].Platform == platform {
			return &b.Profiles[i]
		}
	}
	b.Profiles = append(b.Profiles, PlatformProfile{Platform: platform})
	return &b.Profiles[len(b.Profiles)-1]
}

func (b *Bundle) FindProfile(platform Platform) (PlatformProfile, bool) {
	for _, p := range b.Profiles {
		if p.Platform == platform {
			return p, true
		}
	}
	return PlatformProfile{Platform: platform}, false
}

func (b *Bundle) Trim() {
	b.Ledger.Trim(LedgerCapacity)
	for i := range b.Profiles {
		b.Profiles[i].TrimHeatmap(HeatmapCapacity)
	}
}

// Handle 平台账号，Uid 是本系统的用户
type Handle struct {
	Uid      int64
	Platform Platform
	Handle   string
}

type QuickStats struct {
	TotalSolved   int64
	TotalContests int64
	// AvgRating 三个平台最新分数的平均值，没有分数的平台按 0 算，向下取整
	AvgRating int64
}

type Dashboard struct {
	Profiles []PlatformProfile
	Stats    QuickStats
}

// NewDashboard Profiles 按照 Platforms 的顺序给出，缺的平台补空
func NewDashboard(b Bundle) Dashboard {
	res := Dashboard{Profiles: make([]PlatformProfile, 0, len(Platforms()))}
	var ratingSum int64
	for _, platform := range Platforms() {
		p, _ := b.FindProfile(platform)
		res.Stats.TotalSolved += p.Solved
		res.Stats.TotalContests += int64(len(p.Contests))
		if r, ok := p.LatestRating(); ok {
			ratingSum += r
		}
		res.Profiles = append(res.Profiles, p)
	}
	res.Stats.AvgRating = ratingSum / int64(len(Platforms()))
	return res
}

// UpsolveContest 带上平台的比赛记录
type UpsolveContest struct {
	Platform Platform
	Contest
}

// RecentContests 每个平台取最近 n 场，合并之后按照时间升序，再保留最后 n 场
func (b *Bundle) RecentContests(n int) []UpsolveContest {
	res := make([]UpsolveContest, 0, n*len(b.Profiles))
	for _, platform := range Platforms() {
		p, _ := b.FindProfile(platform)
		cs := p.Contests
		if len(cs) > n {
			cs = cs[len(cs)-n:]
		}
		for _, c := range cs {
			res = append(res, UpsolveContest{Platform: platform, Contest: c})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	if len(res) > n {
		res = res[len(res)-n:]
	}
	return res
}

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

package web

import (
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SaveHandlesReq struct {
	Codeforces string `json:"codeforces"`
	Codechef   string `json:"codechef"`
	Leetcode   string `json:"leetcode"`
}

func (r SaveHandlesReq) toDomain(uid int64) []domain.Handle {
	return []domain.Handle{
		{Uid: uid, Platform: domain.PlatformCodeforces, Handle: r.Codeforces},
		{Uid: uid, Platform: domain.PlatformCodechef, Handle: r.Codechef},
		{Uid: uid, Platform: domain.PlatformLeetcode, Handle: r.Leetcode},
	}
}

type Dashboard struct {
	Platforms []PlatformProfile `json:"platforms"`
	Stats     QuickStats        `json:"stats"`
}

type QuickStats struct {
	TotalSolved   int64 `json:"totalSolved"`
	TotalContests int64 `json:"totalContests"`
	AvgRating     int64 `json:"avgRating"`
}

type PlatformProfile struct {
	Platform   string          `json:"platform"`
	Handle     string          `json:"handle"`
	Solved     int64           `json:"solved"`
	Total      int64           `json:"total"`
	Categories []Category      `json:"categories"`
	Heatmap    []HeatmapBucket `json:"heatmap"`
	Contests   []Contest       `json:"contests"`
}

type Category struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type HeatmapBucket struct {
	Date string `json:"date"`
	Subs int64  `json:"subs"`
}

type Contest struct {
	Name   string `json:"name"`
	Rating int64  `json:"rating"`
	Rank   int64  `json:"rank"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

func newDashboard(d domain.Dashboard) Dashboard {
	return Dashboard{
		Platforms: slice.Map(d.Profiles, func(idx int, src domain.PlatformProfile) PlatformProfile {
			return newPlatformProfile(src)
		}),
		Stats: QuickStats{
			TotalSolved:   d.Stats.TotalSolved,
			TotalContests: d.Stats.TotalContests,
			AvgRating:     d.Stats.AvgRating,
		},
	}
}

func newPlatformProfile(p domain.PlatformProfile) PlatformProfile {
	return PlatformProfile{
		Platform: p.Platform.ToString(),
		Handle:   p.Handle,
		Solved:   p.Solved,
		Total:    p.Total,
		Categories: slice.Map(p.Categories, func(idx int, src domain.Category) Category {
			return Category{Tag: src.Tag, Count: src.Count}
		}),
		Heatmap: slice.Map(p.Heatmap, func(idx int, src domain.HeatmapBucket) HeatmapBucket {
			return HeatmapBucket{Date: src.Date, Subs: src.Subs}
		}),
		Contests: slice.Map(p.Contests, func(idx int, src domain.Contest) Contest {
			return newContest(src)
		}),
	}
}

func newContest(src domain.Contest) Contest {
	return Contest{
		Name:   src.Name,
		Rating: src.Rating,
		Rank:   src.Rank,
		Date:   src.Date.Format(time.DateTime),
		URL:    src.URL,
	}
}

type UpsolveContest struct {
	Platform string `json:"platform"`
	Contest
}

func newUpsolveContests(cs []domain.UpsolveContest) []UpsolveContest {
	return slice.Map(cs, func(idx int, src domain.UpsolveContest) UpsolveContest {
		return UpsolveContest{
			Platform: src.Platform.ToString(),
			Contest:  newContest(src.Contest),
		}
	})
}

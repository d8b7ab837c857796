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

const (
	HeatmapCapacity = 185
	heatmapLayout   = "2006-01-02"
)

type Category struct {
	Tag   string
	Count int64
}

type HeatmapBucket struct {
	// Date UTC 日期，形如 2024-01-02
	Date string
	Subs int64
}

type Contest struct {
	Name   string
	Rating int64
	Rank   int64
	Date   time.Time
	URL    string
}

type PlatformProfile struct {
	Platform Platform
	Handle   string
	Solved   int64
	// Total 标签计数之和，一道题有多个标签会被计算多次
	Total      int64
	Categories []Category
	Heatmap    []HeatmapBucket
	Contests   []Contest
}

// AppendContest 比赛列表按照日期严格递增，日期不大于最后一场的都认为已经记录过了
func (p *PlatformProfile) AppendContest(c Contest) bool {
	if n := len(p.Contests); n > 0 && !c.Date.After(p.Contests[n-1].Date) {
		return false
	}
	p.Contests = append(p.Contests, c)
	return true
}

// LatestRating 没有参加过比赛返回 false
func (p *PlatformProfile) LatestRating() (int64, bool) {
	if len(p.Contests) == 0 {
		return 0, false
	}
	return p.Contests[len(p.Contests)-1].Rating, true
}

// RecordSolved 第一次 AC 的时候调用
func (p *PlatformProfile) RecordSolved(tags []string, at time.Time) {
	p.Solved++
	for _, tag := range tags {
		p.Total++
		p.incrCategory(tag)
	}
	if p.Platform.SupportsHeatmap() {
		p.bumpHeatmap(at)
	}
}

func (p *PlatformProfile) incrCategory(tag string) {
	for i := range p.Categories {
		if p.Categories[i].Tag == tag {
			p.Categories[i].Count++
			return
		}
	}
	p.Categories = append(p.Categories, Category{Tag: tag, Count: 1})
}

func (p *PlatformProfile) bumpHeatmap(at time.Time) {
	date := at.UTC().Format(heatmapLayout)
	for i := len(p.Heatmap) - 1; i >= 0; i-- {
		if p.Heatmap[i].Date == date {
			p.Heatmap[i].Subs++
			return
		}
	}
	p.Heatmap = append(p.Heatmap, HeatmapBucket{Date: date, Subs: 1})
}

// TrimHeatmap 按照日期排序之后丢弃最早的那部分，不补齐中间没有提交的日期
func (p *PlatformProfile) TrimHeatmap(capacity int) {
	if len(p.Heatmap) <= capacity {
		return
	}
	sort.SliceStable(p.Heatmap, func(i, j int) bool {
		return p.Heatmap[i].Date < p.Heatmap[j].Date
	})
	p.Heatmap = p.Heatmap[len(p.Heatmap)-capacity:]
}

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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlatformProfile_AppendContest(t *testing.T) {
	d1 := time.UnixMilli(1700000000000)
	d2 := d1.Add(24 * time.Hour)
	testCases := []struct {
		name      string
		contests  []Contest
		wantDates []time.Time
	}{
		{
			name:      "按顺序追加",
			contests:  []Contest{{Name: "c1", Date: d1}, {Name: "c2", Date: d2}},
			wantDates: []time.Time{d1, d2},
		},
		{
			name:      "乱序，早的被忽略",
			contests:  []Contest{{Name: "c2", Date: d2}, {Name: "c1", Date: d1}},
			wantDates: []time.Time{d2},
		},
		{
			name:      "同一天的比赛只记录一次",
			contests:  []Contest{{Name: "c1", Date: d1}, {Name: "c1", Date: d1}},
			wantDates: []time.Time{d1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := PlatformProfile{Platform: PlatformCodeforces}
			for _, c := range tc.contests {
				p.AppendContest(c)
			}
			dates := make([]time.Time, 0, len(p.Contests))
			for _, c := range p.Contests {
				dates = append(dates, c.Date)
			}
			assert.Equal(t, tc.wantDates, dates)
			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i].After(dates[i-1]))
			}
		})
	}
}

func TestPlatformProfile_LatestRating(t *testing.T) {
	p := PlatformProfile{}
	_, ok := p.LatestRating()
	assert.False(t, ok)
	p.AppendContest(Contest{Rating: 1200, Date: time.UnixMilli(1)})
	p.AppendContest(Contest{Rating: 1350, Date: time.UnixMilli(2)})
	r, ok := p.LatestRating()
	assert.True(t, ok)
	assert.Equal(t, int64(1350), r)
}

func TestPlatformProfile_RecordSolved(t *testing.T) {
	day1 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 3, 1, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		platform    Platform
		wantHeatmap []HeatmapBucket
	}{
		{
			name:     "codeforces 记录热力图",
			platform: PlatformCodeforces,
			wantHeatmap: []HeatmapBucket{
				{Date: "2024-01-02", Subs: 2},
				{Date: "2024-01-03", Subs: 1},
			},
		},
		{
			name:     "leetcode 没有热力图",
			platform: PlatformLeetcode,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := PlatformProfile{Platform: tc.platform}
			p.RecordSolved([]string{"dp", "math"}, day1)
			p.RecordSolved([]string{"dp"}, day1.Add(time.Hour))
			p.RecordSolved(nil, day2)
			assert.Equal(t, int64(3), p.Solved)
			assert.Equal(t, int64(3), p.Total)
			assert.Equal(t, []Category{{Tag: "dp", Count: 2}, {Tag: "math", Count: 1}}, p.Categories)
			assert.Equal(t, tc.wantHeatmap, p.Heatmap)
		})
	}
}

func TestPlatformProfile_TrimHeatmap(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := PlatformProfile{Platform: PlatformCodeforces}
	for i := 0; i < 200; i++ {
		p.Heatmap = append(p.Heatmap, HeatmapBucket{
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			Subs: 1,
		})
	}
	// 顺序乱一点
	p.Heatmap[0], p.Heatmap[199] = p.Heatmap[199], p.Heatmap[0]
	p.TrimHeatmap(HeatmapCapacity)
	assert.Equal(t, HeatmapCapacity, len(p.Heatmap))
	assert.Equal(t, start.AddDate(0, 0, 15).Format("2006-01-02"), p.Heatmap[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 199).Format("2006-01-02"), p.Heatmap[HeatmapCapacity-1].Date)
	for i := 1; i < len(p.Heatmap); i++ {
		assert.True(t, p.Heatmap[i-1].Date < p.Heatmap[i].Date, fmt.Sprintf("第 %d 个", i))
	}
}

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

func TestNewDashboard(t *testing.T) {
	b := Bundle{
		Uid: 1,
		Profiles: []PlatformProfile{
			{
				Platform: PlatformLeetcode,
				Solved:   10,
				Contests: []Contest{{Rating: 1500, Date: time.UnixMilli(1)}},
			},
			{
				Platform: PlatformCodeforces,
				Solved:   5,
				Contests: []Contest{
					{Rating: 1200, Date: time.UnixMilli(1)},
					{Rating: 1301, Date: time.UnixMilli(2)},
				},
			},
		},
	}
	d := NewDashboard(b)
	assert.Equal(t, []Platform{PlatformCodeforces, PlatformCodechef, PlatformLeetcode},
		[]Platform{d.Profiles[0].Platform, d.Profiles[1].Platform, d.Profiles[2].Platform})
	assert.Equal(t, QuickStats{
		TotalSolved:   15,
		TotalContests: 3,
		// (1301 + 0 + 1500) / 3
		AvgRating: 933,
	}, d.Stats)
	// 不会修改原来的数据
	assert.Equal(t, 2, len(b.Profiles))
}

func TestBundle_RecentContests(t *testing.T) {
	contests := func(prefix string, days ...int) []Contest {
		res := make([]Contest, 0, len(days))
		for _, d := range days {
			res = append(res, Contest{Name: prefix, Date: time.UnixMilli(int64(d))})
		}
		return res
	}
	testCases := []struct {
		name     string
		profiles []PlatformProfile
		n        int
		// wantMs 按顺序的比赛时间
		wantMs []int64
		// wantPlatforms 按顺序的平台
		wantPlatforms []Platform
	}{
		{
			name:          "没有比赛",
			n:             5,
			wantMs:        []int64{},
			wantPlatforms: []Platform{},
		},
		{
			name: "单平台超过上限只保留最近的",
			profiles: []PlatformProfile{
				{Platform: PlatformCodeforces, Contests: contests("cf", 1, 2, 3, 4, 5, 6, 7)},
			},
			n:      5,
			wantMs: []int64{3, 4, 5, 6, 7},
			wantPlatforms: []Platform{PlatformCodeforces, PlatformCodeforces, PlatformCodeforces,
				PlatformCodeforces, PlatformCodeforces},
		},
		{
			name: "多平台合并之后按时间升序",
			profiles: []PlatformProfile{
				{Platform: PlatformLeetcode, Contests: contests("lc", 2, 9)},
				{Platform: PlatformCodeforces, Contests: contests("cf", 1, 5, 8)},
				{Platform: PlatformCodechef, Contests: contests("cc", 3)},
			},
			n:      5,
			wantMs: []int64{2, 3, 5, 8, 9},
			wantPlatforms: []Platform{PlatformLeetcode, PlatformCodechef, PlatformCodeforces,
				PlatformCodeforces, PlatformLeetcode},
		},
		{
			name: "总数不足上限",
			profiles: []PlatformProfile{
				{Platform: PlatformCodechef, Contests: contests("cc", 4)},
				{Platform: PlatformCodeforces, Contests: contests("cf", 1)},
			},
			n:             5,
			wantMs:        []int64{1, 4},
			wantPlatforms: []Platform{PlatformCodeforces, PlatformCodechef},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := Bundle{Uid: 1, Profiles: tc.profiles}
			res := b.RecentContests(tc.n)
			ms := make([]int64, 0, len(res))
			platforms := make([]Platform, 0, len(res))
			for _, c := range res {
				ms = append(ms, c.Date.UnixMilli())
				platforms = append(platforms, c.Platform)
			}
			assert.Equal(t, tc.wantMs, ms)
			assert.Equal(t, tc.wantPlatforms, platforms)
		})
	}
}

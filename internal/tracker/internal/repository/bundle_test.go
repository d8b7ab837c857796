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

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/repository/dao"
	daomocks "github.com/ecodeclub/algoknight/internal/tracker/internal/repository/dao/mocks"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBundleRepository_SaveAndFind(t *testing.T) {
	ms := time.Now().UnixMilli()
	now := time.UnixMilli(ms)
	b := domain.Bundle{
		Uid: 1,
		Ledger: domain.Ledger{
			Entries: []domain.LedgerEntry{
				{Pid: 11, Platform: domain.PlatformCodeforces, Status: domain.StatusAC, Time: now},
			},
			LastUpdated: now,
		},
		Profiles: []domain.PlatformProfile{
			{
				Platform:   domain.PlatformCodeforces,
				Handle:     "tourist",
				Solved:     1,
				Total:      2,
				Categories: []domain.Category{{Tag: "math", Count: 1}},
				Heatmap:    []domain.HeatmapBucket{{Date: "2024-01-01", Subs: 2}},
				Contests: []domain.Contest{
					{Name: "Round 1", Rating: 1800, Rank: 3, Date: now, URL: "https://codeforces.com/contest/1"},
				},
			},
		},
	}
	entity := dao.Bundle{
		Ledger: dao.UserLedger{
			Uid: 1,
			Entries: sqlx.JsonColumn[[]dao.Entry]{Val: []dao.Entry{
				{Pid: 11, Platform: "codeforces", Status: "AC", Time: ms},
			}, Valid: true},
			LastUpdated: ms,
		},
		Profiles: []dao.PlatformProfile{
			{
				Uid:        1,
				Platform:   "codeforces",
				Handle:     "tourist",
				Solved:     1,
				Total:      2,
				Categories: sqlx.JsonColumn[[]dao.Category]{Val: []dao.Category{{Tag: "math", Count: 1}}, Valid: true},
				Heatmap:    sqlx.JsonColumn[[]dao.HeatmapBucket]{Val: []dao.HeatmapBucket{{Date: "2024-01-01", Subs: 2}}, Valid: true},
				Contests: sqlx.JsonColumn[[]dao.Contest]{Val: []dao.Contest{
					{Name: "Round 1", Rating: 1800, Rank: 3, Date: ms, URL: "https://codeforces.com/contest/1"},
				}, Valid: true},
			},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockBundleDAO(ctrl)
	d.EXPECT().Save(gomock.Any(), entity).Return(nil)
	d.EXPECT().Find(gomock.Any(), int64(1)).Return(entity, nil)

	repo := NewBundleRepository(d)
	require.NoError(t, repo.Save(context.Background(), b))
	res, err := repo.Find(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, b, res)
}

func TestBundleRepository_FindByUids(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) dao.BundleDAO
		uids    []int64
		wantRes []domain.Bundle
		wantErr error
	}{
		{
			name: "没有用户",
			mock: func(ctrl *gomock.Controller) dao.BundleDAO {
				return daomocks.NewMockBundleDAO(ctrl)
			},
			wantRes: []domain.Bundle{},
		},
		{
			name: "保持顺序",
			mock: func(ctrl *gomock.Controller) dao.BundleDAO {
				d := daomocks.NewMockBundleDAO(ctrl)
				d.EXPECT().FindByUids(gomock.Any(), []int64{3, 2}).Return([]dao.Bundle{
					{Ledger: dao.UserLedger{Uid: 3}},
					{Ledger: dao.UserLedger{Uid: 2}},
				}, nil)
				return d
			},
			uids: []int64{3, 2},
			wantRes: []domain.Bundle{
				{
					Uid:      3,
					Ledger:   domain.Ledger{Entries: []domain.LedgerEntry{}, LastUpdated: time.UnixMilli(0)},
					Profiles: []domain.PlatformProfile{},
				},
				{
					Uid:      2,
					Ledger:   domain.Ledger{Entries: []domain.LedgerEntry{}, LastUpdated: time.UnixMilli(0)},
					Profiles: []domain.PlatformProfile{},
				},
			},
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) dao.BundleDAO {
				d := daomocks.NewMockBundleDAO(ctrl)
				d.EXPECT().FindByUids(gomock.Any(), []int64{1}).Return(nil, errors.New("mock db error"))
				return d
			},
			uids:    []int64{1},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewBundleRepository(tc.mock(ctrl))
			res, err := repo.FindByUids(context.Background(), tc.uids)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestBundleRepository_ListHandles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockBundleDAO(ctrl)
	d.EXPECT().ListHandles(gomock.Any(), "codeforces", 100, 50).Return([]dao.PlatformProfile{
		{Id: 7, Uid: 1, Platform: "codeforces", Handle: "tourist"},
		{Id: 8, Uid: 2, Platform: "codeforces", Handle: "petr"},
	}, nil)
	repo := NewBundleRepository(d)
	res, err := repo.ListHandles(context.Background(), domain.PlatformCodeforces, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, []domain.Handle{
		{Uid: 1, Platform: domain.PlatformCodeforces, Handle: "tourist"},
		{Uid: 2, Platform: domain.PlatformCodeforces, Handle: "petr"},
	}, res)
}

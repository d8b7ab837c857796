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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	networkmocks "github.com/ecodeclub/algoknight/internal/network/mocks"
	"github.com/ecodeclub/algoknight/internal/problem"
	problemmocks "github.com/ecodeclub/algoknight/internal/problem/mocks"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/domain"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/repository"
	smartsheetmocks "github.com/ecodeclub/algoknight/internal/smartsheet/mocks"
	"github.com/ecodeclub/algoknight/internal/tracker"
	trackermocks "github.com/ecodeclub/algoknight/internal/tracker/mocks"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var t0 = time.UnixMilli(1_700_000_000_000)

type mocks struct {
	repo       *smartsheetmocks.MockSmartSheetRepository
	networkSvc *networkmocks.MockService
	trackerSvc *trackermocks.MockService
	problemSvc *problemmocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:       smartsheetmocks.NewMockSmartSheetRepository(ctrl),
		networkSvc: networkmocks.NewMockService(ctrl),
		trackerSvc: trackermocks.NewMockService(ctrl),
		problemSvc: problemmocks.NewMockService(ctrl),
	}
}

func (m mocks) service(now time.Time) *service {
	svc := NewService(m.repo, m.networkSvc, m.trackerSvc, m.problemSvc, Config{}).(*service)
	svc.now = func() time.Time {
		return now
	}
	return svc
}

// findByIds 按照传入顺序的逆序返回，验证结果顺序不依赖返回顺序
func findByIds(_ context.Context, ids []int64) ([]problem.Problem, error) {
	res := make([]problem.Problem, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		res = append(res, problem.Problem{Id: ids[i], Name: "P"})
	}
	return res, nil
}

func pageItems(items ...domain.Item) []domain.PageItem {
	return slice.Map(items, func(idx int, src domain.Item) domain.PageItem {
		return domain.PageItem{
			Problem: problem.Problem{Id: src.Pid, Name: "P"},
			Count:   src.Count,
		}
	})
}

func TestService_GetPage(t *testing.T) {
	const uid int64 = 1
	items45 := make([]domain.Item, 0, 45)
	for i := 1; i <= 45; i++ {
		items45 = append(items45, domain.Item{Pid: int64(i), Count: int64(100 - i)})
	}
	testCases := []struct {
		name     string
		now      time.Time
		mock     func(m mocks)
		page     int
		size     int
		wantPage domain.Page
		wantErr  error
	}{
		{
			name: "重建，所有结果都计数",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{}, repository.ErrSheetNotFound)
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return([]int64{2, 3}, nil)
				m.trackerSvc.EXPECT().Ledgers(gomock.Any(), []int64{2, 3}).Return(map[int64]tracker.Ledger{
					2: {Entries: []tracker.LedgerEntry{
						{Pid: 11, Status: tracker.StatusAC},
						{Pid: 12, Status: tracker.StatusWA},
					}},
					3: {Entries: []tracker.LedgerEntry{
						{Pid: 11, Status: tracker.StatusWA},
					}},
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 11, Count: 2}, {Pid: 12, Count: 1}},
					Utime: t0,
				}).Return(nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{11, 12}).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(domain.Item{Pid: 11, Count: 2}, domain.Item{Pid: 12, Count: 1}),
				TotalPages: 1,
			},
		},
		{
			name: "没有过期，直接使用",
			now:  t0.Add(domain.DefaultTTL - time.Millisecond),
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 5, Count: 1}},
					Utime: t0,
				}, nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{5}).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(domain.Item{Pid: 5, Count: 1}),
				TotalPages: 1,
			},
		},
		{
			name: "刚好过期，重建",
			now:  t0.Add(domain.DefaultTTL),
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 5, Count: 1}},
					Utime: t0,
				}, nil)
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return([]int64{2}, nil)
				m.trackerSvc.EXPECT().Ledgers(gomock.Any(), []int64{2}).Return(map[int64]tracker.Ledger{
					2: {Entries: []tracker.LedgerEntry{{Pid: 6, Status: tracker.StatusTLE}}},
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 6, Count: 1}},
					Utime: t0.Add(domain.DefaultTTL),
				}).Return(nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{6}).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(domain.Item{Pid: 6, Count: 1}),
				TotalPages: 1,
			},
		},
		{
			name: "没有好友",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{}, repository.ErrSheetNotFound)
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return([]int64{}, nil)
				m.repo.EXPECT().Save(gomock.Any(), domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{},
					Utime: t0,
				}).Return(nil)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items: []domain.PageItem{},
			},
		},
		{
			name: "第一页",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{Uid: uid, Items: items45, Utime: t0}, nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(items45[0:20]...),
				TotalPages: 3,
			},
		},
		{
			name: "最后一页不满",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{Uid: uid, Items: items45, Utime: t0}, nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{41, 42, 43, 44, 45}).DoAndReturn(findByIds)
			},
			page: 3,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(items45[40:45]...),
				TotalPages: 3,
			},
		},
		{
			name: "超出范围",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{Uid: uid, Items: items45, Utime: t0}, nil)
			},
			page: 4,
			size: 20,
			wantPage: domain.Page{
				Items:      []domain.PageItem{},
				TotalPages: 3,
			},
		},
		{
			name: "非法分页参数使用默认值",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{Uid: uid, Items: items45, Utime: t0}, nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).DoAndReturn(findByIds)
			},
			page: 0,
			size: -1,
			wantPage: domain.Page{
				Items:      pageItems(items45[0:20]...),
				TotalPages: 3,
			},
		},
		{
			name: "重建失败，使用旧数据",
			now:  t0.Add(time.Hour),
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 5, Count: 1}},
					Utime: t0,
				}, nil)
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return([]int64{2}, nil)
				m.trackerSvc.EXPECT().Ledgers(gomock.Any(), []int64{2}).Return(nil, errors.New("mock db error"))
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{5}).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(domain.Item{Pid: 5, Count: 1}),
				TotalPages: 1,
			},
		},
		{
			name: "重建失败，没有旧数据",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{}, errors.New("mock db error"))
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return(nil, errors.New("mock db error"))
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:    []domain.PageItem{},
				Degraded: true,
			},
		},
		{
			name: "保存失败不影响结果",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{}, repository.ErrSheetNotFound)
				m.networkSvc.EXPECT().FriendIDs(gomock.Any(), uid).Return([]int64{2}, nil)
				m.trackerSvc.EXPECT().Ledgers(gomock.Any(), []int64{2}).Return(map[int64]tracker.Ledger{
					2: {Entries: []tracker.LedgerEntry{{Pid: 7, Status: tracker.StatusAC}}},
				}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{7}).DoAndReturn(findByIds)
			},
			page: 1,
			size: 20,
			wantPage: domain.Page{
				Items:      pageItems(domain.Item{Pid: 7, Count: 1}),
				TotalPages: 1,
			},
		},
		{
			name: "查询题目失败",
			now:  t0,
			mock: func(m mocks) {
				m.repo.EXPECT().Find(gomock.Any(), uid).Return(domain.Sheet{
					Uid:   uid,
					Items: []domain.Item{{Pid: 5, Count: 1}},
					Utime: t0,
				}, nil)
				m.problemSvc.EXPECT().FindByIds(gomock.Any(), []int64{5}).Return(nil, errors.New("mock db error"))
			},
			page:    1,
			size:    20,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			res, err := m.service(tc.now).GetPage(context.Background(), uid, tc.page, tc.size)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantPage, res)
		})
	}
}

func TestService_GetPage_Capacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	entries := make([]tracker.LedgerEntry, 0, 250)
	for i := 1; i <= 250; i++ {
		entries = append(entries, tracker.LedgerEntry{Pid: int64(i), Status: tracker.StatusWA})
	}
	m.repo.EXPECT().Find(gomock.Any(), int64(1)).Return(domain.Sheet{}, repository.ErrSheetNotFound)
	m.networkSvc.EXPECT().FriendIDs(gomock.Any(), int64(1)).Return([]int64{2}, nil)
	m.trackerSvc.EXPECT().Ledgers(gomock.Any(), []int64{2}).Return(map[int64]tracker.Ledger{
		2: {Entries: entries},
	}, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s domain.Sheet) error {
		assert.Len(t, s.Items, domain.DefaultCapacity)
		assert.Equal(t, int64(1), s.Items[0].Pid)
		assert.Equal(t, int64(200), s.Items[199].Pid)
		return nil
	})
	m.problemSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).DoAndReturn(findByIds)
	res, err := m.service(t0).GetPage(context.Background(), 1, 10, 20)
	assert.NoError(t, err)
	assert.Equal(t, 10, res.TotalPages)
	assert.Len(t, res.Items, 20)
}

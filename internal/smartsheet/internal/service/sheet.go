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
	"time"

	"github.com/ecodeclub/algoknight/internal/network"
	"github.com/ecodeclub/algoknight/internal/problem"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/domain"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/repository"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

const defaultPageSize = 20

//go:generate mockgen -source=./sheet.go -destination=../../mocks/smartsheet.mock.go -package=smartsheetmocks Service
type Service interface {
	// GetPage page 从 1 开始
	GetPage(ctx context.Context, uid int64, page, size int) (domain.Page, error)
}

type service struct {
	repo       repository.SmartSheetRepository
	networkSvc network.Service
	trackerSvc tracker.Service
	problemSvc problem.Service
	ttl        time.Duration
	capacity   int
	now        func() time.Time
	logger     *elog.Component
}

func NewService(repo repository.SmartSheetRepository,
	networkSvc network.Service,
	trackerSvc tracker.Service,
	problemSvc problem.Service,
	cfg Config) Service {
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = domain.DefaultCapacity
	}
	return &service{
		repo:       repo,
		networkSvc: networkSvc,
		trackerSvc: trackerSvc,
		problemSvc: problemSvc,
		ttl:        cfg.TTL,
		capacity:   cfg.Capacity,
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) GetPage(ctx context.Context, uid int64, page, size int) (domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	sheet, degraded := s.sheet(ctx, uid)
	total := len(sheet.Items)
	res := domain.Page{
		Items:      []domain.PageItem{},
		TotalPages: (total + size - 1) / size,
		Degraded:   degraded,
	}
	start := (page - 1) * size
	if start >= total {
		return res, nil
	}
	items := sheet.Items[start:min(start+size, total)]
	ps, err := s.problemSvc.FindByIds(ctx, slice.Map(items, func(idx int, src domain.Item) int64 {
		return src.Pid
	}))
	if err != nil {
		return domain.Page{}, err
	}
	pm := slice.ToMap(ps, func(element problem.Problem) int64 {
		return element.Id
	})
	res.Items = slice.FilterMap(items, func(idx int, src domain.Item) (domain.PageItem, bool) {
		p, ok := pm[src.Pid]
		return domain.PageItem{Problem: p, Count: src.Count}, ok
	})
	return res, nil
}

// sheet 缓存失效就重建，重建失败优先返回旧数据，都没有的话返回空列表并且标记降级
func (s *service) sheet(ctx context.Context, uid int64) (domain.Sheet, bool) {
	old, err := s.repo.Find(ctx, uid)
	found := err == nil
	if err != nil && !errors.Is(err, repository.ErrSheetNotFound) {
		s.logger.Error("查询推荐题单失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	now := s.now()
	if found && old.Fresh(now, s.ttl) {
		return old, false
	}
	fresh, err := s.rebuild(ctx, uid, now)
	if err == nil {
		return fresh, false
	}
	s.logger.Error("重建推荐题单失败", elog.FieldErr(err), elog.Int64("uid", uid))
	if found {
		return old, false
	}
	return domain.Sheet{Uid: uid}, true
}

func (s *service) rebuild(ctx context.Context, uid int64, now time.Time) (domain.Sheet, error) {
	fids, err := s.networkSvc.FriendIDs(ctx, uid)
	if err != nil {
		return domain.Sheet{}, err
	}
	res := domain.Sheet{Uid: uid, Items: []domain.Item{}, Utime: now}
	if len(fids) > 0 {
		ledgers, err := s.trackerSvc.Ledgers(ctx, fids)
		if err != nil {
			return domain.Sheet{}, err
		}
		var pids []int64
		// 按照好友顺序遍历，保证结果稳定
		for _, fid := range fids {
			for _, e := range ledgers[fid].Entries {
				pids = append(pids, e.Pid)
			}
		}
		res.Items = domain.Rank(pids, s.capacity)
	}
	// 保存失败只影响下一次请求，本次依旧返回新数据
	if err = s.repo.Save(ctx, res); err != nil {
		s.logger.Error("保存推荐题单失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return res, nil
}

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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUnknownPlatform = errors.New("未知平台")

//go:generate mockgen -source=./service.go -destination=../../mocks/tracker.mock.go -package=trackermocks Service
type Service interface {
	// IngestBatch 一个用户一个平台一批提交，整批一起保存
	IngestBatch(ctx context.Context, uid int64, platform domain.Platform,
		events []domain.SubmissionEvent, polledAt time.Time) (domain.BatchReport, error)
	// AppendContests 返回新追加的比赛数量
	AppendContests(ctx context.Context, uid int64, platform domain.Platform, contests []domain.Contest) (int, error)
	Dashboard(ctx context.Context, uid int64) (domain.Dashboard, error)
	// SaveHandles 换绑的平台会清空旧数据，并且从头开始拉取
	SaveHandles(ctx context.Context, uid int64, handles []domain.Handle) error
	Ledgers(ctx context.Context, uids []int64) (map[int64]domain.Ledger, error)
	Profiles(ctx context.Context, uids []int64) (map[int64][]domain.PlatformProfile, error)
	ListHandles(ctx context.Context, platform domain.Platform, offset, limit int) ([]domain.Handle, error)
	// SearchHandles 按账号模糊搜索，keyword 为空的时候返回空
	SearchHandles(ctx context.Context, keyword string, limit int) ([]domain.Handle, error)
	// Upsolve 所有平台最近的 UpsolveLimit 场比赛，按照时间升序
	Upsolve(ctx context.Context, uid int64) ([]domain.UpsolveContest, error)
}

const UpsolveLimit = 5

type service struct {
	engine *Engine
	repo   repository.BundleRepository
	logger *elog.Component
}

func NewService(engine *Engine, repo repository.BundleRepository) Service {
	return &service{
		engine: engine,
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) IngestBatch(ctx context.Context, uid int64, platform domain.Platform,
	events []domain.SubmissionEvent, polledAt time.Time) (domain.BatchReport, error) {
	if !platform.Valid() {
		return domain.BatchReport{}, fmt.Errorf("%w %s", ErrUnknownPlatform, platform)
	}
	b, err := s.repo.Find(ctx, uid)
	if err != nil {
		return domain.BatchReport{}, err
	}
	b.Uid = uid
	cutoff := b.Ledger.LastUpdated
	profile := b.Profile(platform)

	// 按照提交时间从早到晚处理，后来的非 AC 状态覆盖之前的
	events = append([]domain.SubmissionEvent(nil), events...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SubmittedAt.Before(events[j].SubmittedAt)
	})

	var (
		report      domain.BatchReport
		firstFailed time.Time
		solved      []int64
	)
	for _, evt := range events {
		if evt.Platform != platform {
			s.logger.Warn("提交记录的平台不对", elog.Int64("uid", uid),
				elog.String("platform", platform.ToString()), elog.Any("event", evt))
			report.Record(domain.IngestResultRejected)
			ingestCounter.WithLabelValues(platform.ToString(), domain.IngestResultRejected.String()).Inc()
			continue
		}
		ing, err1 := s.engine.Ingest(ctx, evt, &b.Ledger, profile, cutoff)
		if err1 != nil {
			s.logger.Error("处理提交记录失败", elog.Int64("uid", uid),
				elog.String("url", evt.URL), elog.FieldErr(err1))
			report.Failed++
			if report.Failed == 1 {
				firstFailed = evt.SubmittedAt
			}
			ingestCounter.WithLabelValues(platform.ToString(), "failed").Inc()
			continue
		}
		if ing.Result == domain.IngestResultRejected {
			s.logger.Warn("提交记录非法", elog.Int64("uid", uid), elog.Any("event", evt))
		}
		if ing.FirstAC {
			solved = append(solved, ing.Pid)
		}
		report.Record(ing.Result)
		ingestCounter.WithLabelValues(platform.ToString(), ing.Result.String()).Inc()
	}

	// 有失败的提交，截止时间只能推进到第一条失败的提交，下一轮还会重试它
	next := polledAt
	if report.Failed > 0 && firstFailed.Before(next) {
		next = firstFailed
	}
	if next.After(b.Ledger.LastUpdated) {
		b.Ledger.LastUpdated = next
	}
	report.Cutoff = b.Ledger.LastUpdated

	b.Trim()
	err = s.repo.Save(ctx, b)
	if err != nil {
		return domain.BatchReport{}, err
	}
	// 整批保存成功之后才登记解题人，保存失败的批次不会留下任何数据
	for _, pid := range solved {
		if err = s.engine.AddSolver(ctx, pid, uid); err != nil {
			s.logger.Error("登记解题人失败", elog.Int64("uid", uid),
				elog.Int64("pid", pid), elog.FieldErr(err))
			report.SolverFailed++
		}
	}
	return report, nil
}

func (s *service) AppendContests(ctx context.Context, uid int64, platform domain.Platform, contests []domain.Contest) (int, error) {
	if !platform.Valid() {
		return 0, fmt.Errorf("%w %s", ErrUnknownPlatform, platform)
	}
	b, err := s.repo.Find(ctx, uid)
	if err != nil {
		return 0, err
	}
	b.Uid = uid
	contests = append([]domain.Contest(nil), contests...)
	sort.SliceStable(contests, func(i, j int) bool {
		return contests[i].Date.Before(contests[j].Date)
	})
	profile := b.Profile(platform)
	cnt := 0
	for _, c := range contests {
		if profile.AppendContest(c) {
			cnt++
		}
	}
	if cnt == 0 {
		return 0, nil
	}
	return cnt, s.repo.Save(ctx, b)
}

func (s *service) Dashboard(ctx context.Context, uid int64) (domain.Dashboard, error) {
	b, err := s.repo.Find(ctx, uid)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.NewDashboard(b), nil
}

func (s *service) SaveHandles(ctx context.Context, uid int64, handles []domain.Handle) error {
	for _, h := range handles {
		if !h.Platform.Valid() {
			return fmt.Errorf("%w %s", ErrUnknownPlatform, h.Platform)
		}
	}
	b, err := s.repo.Find(ctx, uid)
	if err != nil {
		return err
	}
	b.Uid = uid
	changed := false
	for _, h := range handles {
		profile := b.Profile(h.Platform)
		if profile.Handle == h.Handle {
			continue
		}
		*profile = domain.PlatformProfile{Platform: h.Platform, Handle: h.Handle}
		b.Ledger.DropPlatform(h.Platform)
		changed = true
	}
	if !changed {
		return nil
	}
	// 截止时间是所有平台共享的，其他平台已经被裁剪掉的 AC 在重新拉取时会被再算一次
	b.Ledger.LastUpdated = time.UnixMilli(0)
	return s.repo.Save(ctx, b)
}

func (s *service) Ledgers(ctx context.Context, uids []int64) (map[int64]domain.Ledger, error) {
	bs, err := s.repo.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.ToMapV(bs, func(element domain.Bundle) (int64, domain.Ledger) {
		return element.Uid, element.Ledger
	}), nil
}

func (s *service) Profiles(ctx context.Context, uids []int64) (map[int64][]domain.PlatformProfile, error) {
	bs, err := s.repo.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.ToMapV(bs, func(element domain.Bundle) (int64, []domain.PlatformProfile) {
		return element.Uid, element.Profiles
	}), nil
}

func (s *service) ListHandles(ctx context.Context, platform domain.Platform, offset, limit int) ([]domain.Handle, error) {
	return s.repo.ListHandles(ctx, platform, offset, limit)
}

func (s *service) SearchHandles(ctx context.Context, keyword string, limit int) ([]domain.Handle, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || limit <= 0 {
		return []domain.Handle{}, nil
	}
	return s.repo.SearchHandles(ctx, keyword, limit)
}

func (s *service) Upsolve(ctx context.Context, uid int64) ([]domain.UpsolveContest, error) {
	b, err := s.repo.Find(ctx, uid)
	if err != nil {
		return nil, err
	}
	return b.RecentContests(UpsolveLimit), nil
}

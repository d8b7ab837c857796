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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/event"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/platform"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var _ ecron.NamedJob = (*PollJob)(nil)

// PollJob 定时拉取各平台的数据，结果通过消息队列交给 Service 处理
type PollJob struct {
	svc         service.Service
	fetchers    []platform.Fetcher
	producer    event.TrackerEventProducer
	limit       int
	concurrency int
	l           *elog.Component
}

func NewPollJob(svc service.Service,
	fetchers []platform.Fetcher,
	producer event.TrackerEventProducer,
	limit int, concurrency int) *PollJob {
	if limit <= 0 {
		limit = 100
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PollJob{
		svc:         svc,
		fetchers:    fetchers,
		producer:    producer,
		limit:       limit,
		concurrency: concurrency,
		l:           elog.DefaultLogger,
	}
}

func (p *PollJob) Name() string {
	return "tracker_poll_job"
}

func (p *PollJob) Run(ctx context.Context) error {
	for _, f := range p.fetchers {
		err := p.runPlatform(ctx, f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *PollJob) runPlatform(ctx context.Context, f platform.Fetcher) error {
	offset := 0
	for {
		handles, err := p.svc.ListHandles(ctx, f.Platform(), offset, p.limit)
		if err != nil {
			return fmt.Errorf("获取平台账号失败: %w", err)
		}
		var eg errgroup.Group
		eg.SetLimit(p.concurrency)
		for _, h := range handles {
			h := h
			eg.Go(func() error {
				// 单个用户失败不影响其他用户
				p.poll(ctx, f, h)
				return nil
			})
		}
		_ = eg.Wait()
		if len(handles) < p.limit {
			return nil
		}
		offset += len(handles)
	}
}

func (p *PollJob) poll(ctx context.Context, f platform.Fetcher, h domain.Handle) {
	// 拉取之前记时间，拉取过程中的新提交下一轮还能拿到
	polledAt := time.Now()
	subs, err := f.Submissions(ctx, h.Handle)
	if err != nil {
		p.l.Error("拉取提交记录失败", elog.FieldErr(err),
			elog.Int64("uid", h.Uid), elog.String("handle", h.Handle))
	} else {
		err = p.producer.Produce(ctx, event.NewSubmissionEvent(shortuuid.New(), h, polledAt, subs))
		if err != nil {
			p.l.Error("发送提交记录失败", elog.FieldErr(err), elog.Int64("uid", h.Uid))
		}
	}

	contests, err := f.Contests(ctx, h.Handle)
	if err != nil {
		p.l.Error("拉取比赛记录失败", elog.FieldErr(err),
			elog.Int64("uid", h.Uid), elog.String("handle", h.Handle))
		return
	}
	err = p.producer.Produce(ctx, event.NewContestEvent(shortuuid.New(), h, polledAt, contests))
	if err != nil {
		p.l.Error("发送比赛记录失败", elog.FieldErr(err), elog.Int64("uid", h.Uid))
	}
}

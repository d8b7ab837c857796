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

	"github.com/ecodeclub/algoknight/internal/problem"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
)

// Engine 处理单条提交记录，本身不关心拉取和持久化
type Engine struct {
	problemSvc problem.Service
}

func NewEngine(problemSvc problem.Service) *Engine {
	return &Engine{problemSvc: problemSvc}
}

// Ingest 只修改内存里的 ledger 和 profile，返回 error 的时候两者都没有被修改。
// 解题人由调用方在整批保存成功之后登记
func (e *Engine) Ingest(ctx context.Context,
	evt domain.SubmissionEvent,
	ledger *domain.Ledger,
	profile *domain.PlatformProfile,
	cutoff time.Time) (domain.Ingestion, error) {
	if !evt.Status.Valid() {
		return domain.Ingestion{Result: domain.IngestResultRejected}, nil
	}
	if evt.SubmittedAt.Before(cutoff) {
		return domain.Ingestion{Result: domain.IngestResultStale}, nil
	}
	p, err := e.problemSvc.Resolve(ctx, problem.Problem{
		URL:        evt.URL,
		Name:       evt.Name,
		Platform:   evt.Platform.ToString(),
		Difficulty: evt.Difficulty,
		Tags:       evt.Tags,
	})
	if errors.Is(err, problem.ErrInvalidProblem) {
		return domain.Ingestion{Result: domain.IngestResultRejected}, nil
	}
	if err != nil {
		return domain.Ingestion{Result: domain.IngestResultUnknown}, err
	}

	idx, ok := ledger.Find(p.Id)
	if ok && ledger.Entries[idx].Status == domain.StatusAC {
		return domain.Ingestion{Result: domain.IngestResultAlreadySolved, Pid: p.Id}, nil
	}
	entry := domain.LedgerEntry{
		Pid:      p.Id,
		Platform: evt.Platform,
		Status:   evt.Status,
		Time:     evt.SubmittedAt,
	}
	if ok {
		ledger.Entries[idx] = entry
	} else {
		ledger.Entries = append(ledger.Entries, entry)
	}
	firstAC := evt.Status == domain.StatusAC
	if firstAC {
		profile.RecordSolved(evt.Tags, evt.SubmittedAt)
	}
	return domain.Ingestion{Result: domain.IngestResultApplied, Pid: p.Id, FirstAC: firstAC}, nil
}

// AddSolver 重复登记是幂等的
func (e *Engine) AddSolver(ctx context.Context, pid, uid int64) error {
	return e.problemSvc.AddSolver(ctx, pid, uid)
}

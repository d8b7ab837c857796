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
	"time"

	"github.com/ecodeclub/algoknight/internal/problem/internal/domain"
	"github.com/ecodeclub/algoknight/internal/problem/internal/repository/cache"
	"github.com/ecodeclub/algoknight/internal/problem/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./problem.go -destination=./mocks/problem.mock.go -package=repomocks ProblemRepository
type ProblemRepository interface {
	Resolve(ctx context.Context, p domain.Problem) (domain.Problem, error)
	AddSolver(ctx context.Context, pid, uid int64) error
	FindByIds(ctx context.Context, ids []int64) ([]domain.Problem, error)
}

type CachedProblemRepository struct {
	dao    dao.ProblemDAO
	cache  cache.ProblemCache
	logger *elog.Component
}

func NewCachedProblemRepository(d dao.ProblemDAO, c cache.ProblemCache) ProblemRepository {
	return &CachedProblemRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedProblemRepository) Resolve(ctx context.Context, p domain.Problem) (domain.Problem, error) {
	res, err := r.cache.GetProblem(ctx, p.URL)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrProblemNotFound) {
		// 缓存出问题了，直接查库
		r.logger.Warn("查询题目缓存失败", elog.String("url", p.URL), elog.FieldErr(err))
	}
	entity, err := r.dao.FindOrCreate(ctx, r.toEntity(p))
	if err != nil {
		return domain.Problem{}, err
	}
	res = r.toDomain(entity)
	if err = r.cache.SetProblem(ctx, res); err != nil {
		r.logger.Error("回写题目缓存失败", elog.Int64("pid", res.Id), elog.FieldErr(err))
	}
	return res, nil
}

func (r *CachedProblemRepository) AddSolver(ctx context.Context, pid, uid int64) error {
	return r.dao.AddSolver(ctx, pid, uid)
}

func (r *CachedProblemRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Problem, error) {
	var (
		eg       errgroup.Group
		problems []dao.Problem
		cnts     map[int64]int64
	)
	eg.Go(func() error {
		var err error
		problems, err = r.dao.FindByIds(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		cnts, err = r.dao.CountSolvers(ctx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.Map(problems, func(idx int, src dao.Problem) domain.Problem {
		res := r.toDomain(src)
		res.SolverCount = cnts[src.Id]
		return res
	}), nil
}

func (r *CachedProblemRepository) toEntity(p domain.Problem) dao.Problem {
	return dao.Problem{
		Id:         p.Id,
		URL:        p.URL,
		Name:       p.Name,
		Platform:   p.Platform,
		Difficulty: p.Difficulty,
		Tags: sqlx.JsonColumn[[]string]{
			Val:   p.Tags,
			Valid: len(p.Tags) != 0,
		},
	}
}

func (r *CachedProblemRepository) toDomain(p dao.Problem) domain.Problem {
	return domain.Problem{
		Id:         p.Id,
		URL:        p.URL,
		Name:       p.Name,
		Platform:   p.Platform,
		Difficulty: p.Difficulty,
		Tags:       p.Tags.Val,
		Ctime:      time.UnixMilli(p.Ctime),
		Utime:      time.UnixMilli(p.Utime),
	}
}

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
	"strings"

	"github.com/ecodeclub/algoknight/internal/problem/internal/domain"
	"github.com/ecodeclub/algoknight/internal/problem/internal/repository"
)

var ErrInvalidProblem = errors.New("题目信息非法")

//go:generate mockgen -source=./problem.go -destination=../../mocks/problem.mock.go -package=problemmocks Service
type Service interface {
	// Resolve 按照 URL 查找题目，不存在就创建
	Resolve(ctx context.Context, p domain.Problem) (domain.Problem, error)
	// AddSolver 重复添加同一个用户是幂等的
	AddSolver(ctx context.Context, pid, uid int64) error
	// FindByIds 不保证返回顺序，会填充 SolverCount
	FindByIds(ctx context.Context, ids []int64) ([]domain.Problem, error)
}

type service struct {
	repo repository.ProblemRepository
}

func NewService(repo repository.ProblemRepository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, p domain.Problem) (domain.Problem, error) {
	p.URL = strings.TrimSpace(p.URL)
	if p.URL == "" || p.Name == "" {
		return domain.Problem{}, fmt.Errorf("%w, url: %q", ErrInvalidProblem, p.URL)
	}
	if p.Difficulty == "" {
		p.Difficulty = domain.DefaultDifficulty
	}
	return s.repo.Resolve(ctx, p)
}

func (s *service) AddSolver(ctx context.Context, pid, uid int64) error {
	return s.repo.AddSolver(ctx, pid, uid)
}

func (s *service) FindByIds(ctx context.Context, ids []int64) ([]domain.Problem, error) {
	if len(ids) == 0 {
		return []domain.Problem{}, nil
	}
	return s.repo.FindByIds(ctx, ids)
}

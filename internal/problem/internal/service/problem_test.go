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

	"github.com/ecodeclub/algoknight/internal/problem/internal/domain"
	"github.com/ecodeclub/algoknight/internal/problem/internal/repository"
	repomocks "github.com/ecodeclub/algoknight/internal/problem/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Resolve(t *testing.T) {
	const url = "https://codeforces.com/problemset/problem/1/A"
	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) repository.ProblemRepository
		input domain.Problem

		wantRes domain.Problem
		wantErr error
	}{
		{
			name: "去掉 URL 首尾空白",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				repo := repomocks.NewMockProblemRepository(ctrl)
				repo.EXPECT().Resolve(gomock.Any(), domain.Problem{
					URL:        url,
					Name:       "Theatre Square",
					Platform:   "codeforces",
					Difficulty: "1000",
				}).DoAndReturn(func(ctx context.Context, p domain.Problem) (domain.Problem, error) {
					p.Id = 1
					return p, nil
				})
				return repo
			},
			input: domain.Problem{
				URL:        "  " + url + "\n",
				Name:       "Theatre Square",
				Platform:   "codeforces",
				Difficulty: "1000",
			},
			wantRes: domain.Problem{
				Id:         1,
				URL:        url,
				Name:       "Theatre Square",
				Platform:   "codeforces",
				Difficulty: "1000",
			},
		},
		{
			name: "没有难度的时候使用默认难度",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				repo := repomocks.NewMockProblemRepository(ctrl)
				repo.EXPECT().Resolve(gomock.Any(), domain.Problem{
					URL:        url,
					Name:       "A",
					Difficulty: domain.DefaultDifficulty,
				}).DoAndReturn(func(ctx context.Context, p domain.Problem) (domain.Problem, error) {
					p.Id = 2
					return p, nil
				})
				return repo
			},
			input: domain.Problem{URL: url, Name: "A"},
			wantRes: domain.Problem{
				Id:         2,
				URL:        url,
				Name:       "A",
				Difficulty: domain.DefaultDifficulty,
			},
		},
		{
			name: "URL 为空",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				return repomocks.NewMockProblemRepository(ctrl)
			},
			input:   domain.Problem{URL: "", Name: "A"},
			wantErr: ErrInvalidProblem,
		},
		{
			name: "URL 只有空白",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				return repomocks.NewMockProblemRepository(ctrl)
			},
			input:   domain.Problem{URL: " \t ", Name: "A"},
			wantErr: ErrInvalidProblem,
		},
		{
			name: "名称为空",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				return repomocks.NewMockProblemRepository(ctrl)
			},
			input:   domain.Problem{URL: url},
			wantErr: ErrInvalidProblem,
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) repository.ProblemRepository {
				repo := repomocks.NewMockProblemRepository(ctrl)
				repo.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.Problem{}, errors.New("mock db error"))
				return repo
			},
			input:   domain.Problem{URL: url, Name: "A"},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.Resolve(context.Background(), tc.input)
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, ErrInvalidProblem) {
					assert.ErrorIs(t, err, ErrInvalidProblem)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestService_FindByIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// 空的 ids 不会查询存储
	svc := NewService(repomocks.NewMockProblemRepository(ctrl))
	res, err := svc.FindByIds(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Problem{}, res)
}

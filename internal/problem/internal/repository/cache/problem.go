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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/algoknight/internal/problem/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrProblemNotFound = errors.New("题目没找到")

// 题目创建后不会变更，只有解题人数在变，解题人数不进缓存
const expiration = 24 * time.Hour

//go:generate mockgen -source=./problem.go -destination=./mocks/problem.mock.go -package=cachemocks ProblemCache
type ProblemCache interface {
	GetProblem(ctx context.Context, url string) (domain.Problem, error)
	SetProblem(ctx context.Context, p domain.Problem) error
}

type ProblemECache struct {
	ec ecache.Cache
}

func NewProblemECache(ec ecache.Cache) ProblemCache {
	return &ProblemECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "problem:",
		},
	}
}

func (p *ProblemECache) GetProblem(ctx context.Context, url string) (domain.Problem, error) {
	val := p.ec.Get(ctx, p.urlKey(url))
	if val.KeyNotFound() {
		return domain.Problem{}, ErrProblemNotFound
	}
	if val.Err != nil {
		return domain.Problem{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.AsString()
	if err != nil {
		return domain.Problem{}, errors.Wrap(err, "缓存数据类型不对")
	}
	var res domain.Problem
	err = json.Unmarshal([]byte(str), &res)
	if err != nil {
		return domain.Problem{}, errors.Wrap(err, "反序列化题目失败")
	}
	return res, nil
}

func (p *ProblemECache) SetProblem(ctx context.Context, pro domain.Problem) error {
	data, err := json.Marshal(pro)
	if err != nil {
		return errors.Wrap(err, "序列化题目失败")
	}
	return p.ec.Set(ctx, p.urlKey(pro.URL), string(data), expiration)
}

func (p *ProblemECache) urlKey(url string) string {
	return "url:" + url
}

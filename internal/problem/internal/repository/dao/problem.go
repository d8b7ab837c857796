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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./problem.go -destination=./mocks/problem.mock.go -package=daomocks ProblemDAO
type ProblemDAO interface {
	FindByURL(ctx context.Context, url string) (Problem, error)
	// FindOrCreate 同一个 URL 并发创建的时候，以先写入的记录为准
	FindOrCreate(ctx context.Context, p Problem) (Problem, error)
	FindByIds(ctx context.Context, ids []int64) ([]Problem, error)
	AddSolver(ctx context.Context, pid, uid int64) error
	CountSolvers(ctx context.Context, pids []int64) (map[int64]int64, error)
}

type GORMProblemDAO struct {
	db *egorm.Component
}

func NewGORMProblemDAO(db *egorm.Component) ProblemDAO {
	return &GORMProblemDAO{db: db}
}

func (g *GORMProblemDAO) FindByURL(ctx context.Context, url string) (Problem, error) {
	var res Problem
	err := g.db.WithContext(ctx).Where("url = ?", url).First(&res).Error
	return res, err
}

func (g *GORMProblemDAO) FindOrCreate(ctx context.Context, p Problem) (Problem, error) {
	now := time.Now().UnixMilli()
	p.Id = 0
	p.Ctime = now
	p.Utime = now
	res := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(&p)
	if res.Error != nil {
		return Problem{}, res.Error
	}
	if res.RowsAffected > 0 {
		return p, nil
	}
	// 别人先插入了，用已有的记录
	return g.FindByURL(ctx, p.URL)
}

func (g *GORMProblemDAO) FindByIds(ctx context.Context, ids []int64) ([]Problem, error) {
	var res []Problem
	err := g.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&res).Error
	return res, err
}

func (g *GORMProblemDAO) AddSolver(ctx context.Context, pid, uid int64) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&ProblemSolver{
		Pid:   pid,
		Uid:   uid,
		Ctime: time.Now().UnixMilli(),
	}).Error
}

func (g *GORMProblemDAO) CountSolvers(ctx context.Context, pids []int64) (map[int64]int64, error) {
	var cnts []solverCount
	err := g.db.WithContext(ctx).
		Model(&ProblemSolver{}).
		Select("pid, COUNT(*) AS cnt").
		Where("pid IN ?", pids).
		Group("pid").
		Scan(&cnts).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(cnts))
	for _, c := range cnts {
		res[c.Pid] = c.Cnt
	}
	return res, nil
}

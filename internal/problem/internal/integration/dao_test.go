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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/algoknight/internal/problem/internal/repository/dao"
	testioc "github.com/ecodeclub/algoknight/internal/test/ioc"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GORMProblemDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ProblemDAO
}

func (s *GORMProblemDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMProblemDAO(s.db)
}

func (s *GORMProblemDAOTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `problems`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `problem_solvers`").Error
	require.NoError(s.T(), err)
}

func (s *GORMProblemDAOTestSuite) problem(url, name string) dao.Problem {
	return dao.Problem{
		URL:        url,
		Name:       name,
		Platform:   "codeforces",
		Difficulty: "800",
		Tags:       sqlx.JsonColumn[[]string]{Val: []string{"math"}, Valid: true},
	}
}

func (s *GORMProblemDAOTestSuite) TestFindOrCreate() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	const url = "https://codeforces.com/problemset/problem/1/A"

	first, err := s.dao.FindOrCreate(ctx, s.problem(url, "Theatre Square"))
	require.NoError(t, err)
	assert.True(t, first.Id > 0)
	assert.True(t, first.Ctime > 0)

	// 同一个 URL 再来一次，名称不同也沿用已有的记录
	second, err := s.dao.FindOrCreate(ctx, s.problem(url, "renamed"))
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "Theatre Square", second.Name)
	assert.Equal(t, []string{"math"}, second.Tags.Val)

	var cnt int64
	err = s.db.WithContext(ctx).Model(&dao.Problem{}).Where("url = ?", url).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	other, err := s.dao.FindOrCreate(ctx, s.problem("https://codeforces.com/problemset/problem/2/B", "B"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, other.Id)
}

func (s *GORMProblemDAOTestSuite) TestAddSolver() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := s.dao.FindOrCreate(ctx, s.problem("https://codeforces.com/problemset/problem/3/C", "C"))
	require.NoError(t, err)
	// 重复登记是幂等的
	require.NoError(t, s.dao.AddSolver(ctx, p.Id, 1))
	require.NoError(t, s.dao.AddSolver(ctx, p.Id, 1))
	require.NoError(t, s.dao.AddSolver(ctx, p.Id, 2))

	cnts, err := s.dao.CountSolvers(ctx, []int64{p.Id, p.Id + 100})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{p.Id: 2}, cnts)
}

func TestGORMProblemDAO(t *testing.T) {
	suite.Run(t, new(GORMProblemDAOTestSuite))
}

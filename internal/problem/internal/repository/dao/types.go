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

import "github.com/ecodeclub/ekit/sqlx"

type Problem struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	URL        string `gorm:"type:varchar(512);uniqueIndex"`
	Name       string `gorm:"type:varchar(512)"`
	Platform   string `gorm:"type:varchar(64);index"`
	Difficulty string `gorm:"type:varchar(64)"`
	Tags       sqlx.JsonColumn[[]string]
	Ctime      int64
	Utime      int64
}

// ProblemSolver 解出题目的用户，(pid, uid) 唯一，所以重复写入是幂等的
type ProblemSolver struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Pid   int64 `gorm:"uniqueIndex:pid_uid"`
	Uid   int64 `gorm:"uniqueIndex:pid_uid;index"`
	Ctime int64
}

type solverCount struct {
	Pid int64
	Cnt int64
}

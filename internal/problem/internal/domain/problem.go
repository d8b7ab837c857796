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

package domain

import "time"

// DefaultDifficulty 平台没有给出难度的时候使用
const DefaultDifficulty = "Random"

// Problem 以 URL 作为唯一标识，创建之后不会删除
type Problem struct {
	Id         int64
	URL        string
	Name       string
	Platform   string
	Difficulty string
	Tags       []string
	// 只在批量查询的时候填充
	SolverCount int64
	Ctime       time.Time
	Utime       time.Time
}

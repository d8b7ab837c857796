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

import "github.com/ecodeclub/algoknight/internal/problem"

type PageItem struct {
	Problem problem.Problem
	Count   int64
}

type Page struct {
	Items      []PageItem
	TotalPages int
	// Degraded 重建失败并且没有旧数据可用
	Degraded bool
}

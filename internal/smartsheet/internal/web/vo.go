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

package web

import (
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ListReq struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

type Problem struct {
	Id          int64    `json:"id"`
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	Platform    string   `json:"platform"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	SolverCount int64    `json:"solverCount"`
}

type Item struct {
	Problem Problem `json:"problem"`
	Count   int64   `json:"count"`
}

type ListResp struct {
	List       []Item `json:"list"`
	TotalPages int    `json:"totalPages"`
	Degraded   bool   `json:"degraded"`
}

func newListResp(p domain.Page) ListResp {
	return ListResp{
		List: slice.Map(p.Items, func(idx int, src domain.PageItem) Item {
			return Item{
				Problem: Problem{
					Id:          src.Problem.Id,
					URL:         src.Problem.URL,
					Name:        src.Problem.Name,
					Platform:    src.Problem.Platform,
					Difficulty:  src.Problem.Difficulty,
					Tags:        src.Problem.Tags,
					SolverCount: src.Problem.SolverCount,
				},
				Count: src.Count,
			}
		}),
		TotalPages: p.TotalPages,
		Degraded:   p.Degraded,
	}
}

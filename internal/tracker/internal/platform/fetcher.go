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

package platform

import (
	"context"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
)

// Fetcher 从外部平台拉取数据，返回归一化之后的结果
//
//go:generate mockgen -source=./fetcher.go -destination=./mocks/fetcher.mock.go -package=platformmocks Fetcher
type Fetcher interface {
	Platform() domain.Platform
	Submissions(ctx context.Context, handle string) ([]domain.SubmissionEvent, error)
	Contests(ctx context.Context, handle string) ([]domain.Contest, error)
}

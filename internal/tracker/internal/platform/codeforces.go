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
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/ecodeclub/ekit/slice"
)

const (
	CodeforcesBaseURL = "https://codeforces.com"
	// 一次最多拉取最近的这么多条提交
	defaultSubmissionCount = 100
)

var verdicts = map[string]domain.Status{
	"OK":                    domain.StatusAC,
	"WRONG_ANSWER":          domain.StatusWA,
	"TIME_LIMIT_EXCEEDED":   domain.StatusTLE,
	"MEMORY_LIMIT_EXCEEDED": domain.StatusMLE,
	"RUNTIME_ERROR":         domain.StatusRE,
	"COMPILATION_ERROR":     domain.StatusCE,
}

type CodeforcesFetcher struct {
	baseURL string
	count   int
	client  *http.Client
}

func NewCodeforcesFetcher(baseURL string, count int, client *http.Client) *CodeforcesFetcher {
	if baseURL == "" {
		baseURL = CodeforcesBaseURL
	}
	if count <= 0 {
		count = defaultSubmissionCount
	}
	return &CodeforcesFetcher{
		baseURL: baseURL,
		count:   count,
		client:  client,
	}
}

func (f *CodeforcesFetcher) Platform() domain.Platform {
	return domain.PlatformCodeforces
}

func (f *CodeforcesFetcher) Submissions(ctx context.Context, handle string) ([]domain.SubmissionEvent, error) {
	var res cfResult[[]cfSubmission]
	err := httpx.NewRequest(ctx, http.MethodGet, f.baseURL+"/api/user.status").
		Client(f.client).
		AddParam("handle", handle).
		AddParam("from", "1").
		AddParam("count", strconv.Itoa(f.count)).
		Do().
		JSONScan(&res)
	if err != nil {
		return nil, err
	}
	if res.Status != "OK" {
		return nil, fmt.Errorf("拉取 codeforces 提交记录失败 %s, %s", handle, res.Comment)
	}
	return slice.Map(res.Result, func(idx int, src cfSubmission) domain.SubmissionEvent {
		return f.toSubmission(src)
	}), nil
}

func (f *CodeforcesFetcher) Contests(ctx context.Context, handle string) ([]domain.Contest, error) {
	var res cfResult[[]cfRatingChange]
	err := httpx.NewRequest(ctx, http.MethodGet, f.baseURL+"/api/user.rating").
		Client(f.client).
		AddParam("handle", handle).
		Do().
		JSONScan(&res)
	if err != nil {
		return nil, err
	}
	if res.Status != "OK" {
		return nil, fmt.Errorf("拉取 codeforces 比赛记录失败 %s, %s", handle, res.Comment)
	}
	return slice.Map(res.Result, func(idx int, src cfRatingChange) domain.Contest {
		return domain.Contest{
			Name:   src.ContestName,
			Rating: src.NewRating,
			Rank:   src.Rank,
			Date:   time.Unix(src.RatingUpdateTimeSeconds, 0),
			URL:    fmt.Sprintf("%s/contest/%d", CodeforcesBaseURL, src.ContestId),
		}
	}), nil
}

func (f *CodeforcesFetcher) toSubmission(src cfSubmission) domain.SubmissionEvent {
	status, ok := verdicts[src.Verdict]
	if !ok {
		// 其它结果原样透传，交给后面拒绝
		status = domain.Status(src.Verdict)
	}
	difficulty := ""
	if src.Problem.Rating > 0 {
		difficulty = strconv.FormatInt(src.Problem.Rating, 10)
	}
	return domain.SubmissionEvent{
		URL: fmt.Sprintf("%s/problemset/problem/%d/%s",
			CodeforcesBaseURL, src.Problem.ContestId, src.Problem.Index),
		Name:        src.Problem.Name,
		Platform:    domain.PlatformCodeforces,
		Difficulty:  difficulty,
		Tags:        src.Problem.Tags,
		Status:      status,
		SubmittedAt: time.Unix(src.CreationTimeSeconds, 0),
	}
}

type cfResult[T any] struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  T      `json:"result"`
}

type cfSubmission struct {
	Id                  int64     `json:"id"`
	CreationTimeSeconds int64     `json:"creationTimeSeconds"`
	Problem             cfProblem `json:"problem"`
	Verdict             string    `json:"verdict"`
}

type cfProblem struct {
	ContestId int64    `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int64    `json:"rating"`
	Tags      []string `json:"tags"`
}

type cfRatingChange struct {
	ContestId               int64  `json:"contestId"`
	ContestName             string `json:"contestName"`
	Rank                    int64  `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	NewRating               int64  `json:"newRating"`
}

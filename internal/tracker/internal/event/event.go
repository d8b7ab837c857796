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

package event

import (
	"context"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/ecodeclub/ekit/slice"
)

const TrackerEventName = "tracker_events"

const (
	ActionSubmission = "submission"
	ActionContest    = "contest"
)

// TrackerEvent 一个用户一个平台一次拉取的结果
type TrackerEvent struct {
	// Key 用来识别重复投递
	Key string `json:"key"`
	// 取值是
	// submission, contest 两个
	Action      string       `json:"action"`
	Uid         int64        `json:"uid"`
	Platform    string       `json:"platform"`
	PolledAt    int64        `json:"polledAt"`
	Submissions []Submission `json:"submissions,omitempty"`
	Contests    []Contest    `json:"contests,omitempty"`
}

type Submission struct {
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	SubmittedAt int64    `json:"submittedAt"`
}

type Contest struct {
	Name   string `json:"name"`
	Rating int64  `json:"rating"`
	Rank   int64  `json:"rank"`
	Date   int64  `json:"date"`
	URL    string `json:"url"`
}

type handleFunc func(ctx context.Context, svc service.Service, evt TrackerEvent) error

func submissionHandle(ctx context.Context, svc service.Service, evt TrackerEvent) error {
	platform := domain.Platform(evt.Platform)
	events := slice.Map(evt.Submissions, func(idx int, src Submission) domain.SubmissionEvent {
		return domain.SubmissionEvent{
			URL:         src.URL,
			Name:        src.Name,
			Platform:    platform,
			Difficulty:  src.Difficulty,
			Tags:        src.Tags,
			Status:      domain.Status(src.Status),
			SubmittedAt: time.UnixMilli(src.SubmittedAt),
		}
	})
	_, err := svc.IngestBatch(ctx, evt.Uid, platform, events, time.UnixMilli(evt.PolledAt))
	return err
}

func contestHandle(ctx context.Context, svc service.Service, evt TrackerEvent) error {
	contests := slice.Map(evt.Contests, func(idx int, src Contest) domain.Contest {
		return domain.Contest{
			Name:   src.Name,
			Rating: src.Rating,
			Rank:   src.Rank,
			Date:   time.UnixMilli(src.Date),
			URL:    src.URL,
		}
	})
	_, err := svc.AppendContests(ctx, evt.Uid, domain.Platform(evt.Platform), contests)
	return err
}

func NewSubmissionEvent(key string, h domain.Handle, polledAt time.Time, subs []domain.SubmissionEvent) TrackerEvent {
	return TrackerEvent{
		Key:      key,
		Action:   ActionSubmission,
		Uid:      h.Uid,
		Platform: h.Platform.ToString(),
		PolledAt: polledAt.UnixMilli(),
		Submissions: slice.Map(subs, func(idx int, src domain.SubmissionEvent) Submission {
			return Submission{
				URL:         src.URL,
				Name:        src.Name,
				Difficulty:  src.Difficulty,
				Tags:        src.Tags,
				Status:      src.Status.ToString(),
				SubmittedAt: src.SubmittedAt.UnixMilli(),
			}
		}),
	}
}

func NewContestEvent(key string, h domain.Handle, polledAt time.Time, contests []domain.Contest) TrackerEvent {
	return TrackerEvent{
		Key:      key,
		Action:   ActionContest,
		Uid:      h.Uid,
		Platform: h.Platform.ToString(),
		PolledAt: polledAt.UnixMilli(),
		Contests: slice.Map(contests, func(idx int, src domain.Contest) Contest {
			return Contest{
				Name:   src.Name,
				Rating: src.Rating,
				Rank:   src.Rank,
				Date:   src.Date.UnixMilli(),
				URL:    src.URL,
			}
		}),
	}
}

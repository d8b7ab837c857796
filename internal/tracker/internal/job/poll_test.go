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

package job

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/event"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/platform"
	platformmocks "github.com/ecodeclub/algoknight/internal/tracker/internal/platform/mocks"
	trackermocks "github.com/ecodeclub/algoknight/internal/tracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	mu     sync.Mutex
	events []event.TrackerEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.TrackerEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}

func TestPollJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := trackermocks.NewMockService(ctrl)
	// 每页两个，第二页不满就结束
	svc.EXPECT().ListHandles(gomock.Any(), domain.PlatformCodeforces, 0, 2).Return([]domain.Handle{
		{Uid: 1, Platform: domain.PlatformCodeforces, Handle: "u1"},
		{Uid: 2, Platform: domain.PlatformCodeforces, Handle: "u2"},
	}, nil)
	svc.EXPECT().ListHandles(gomock.Any(), domain.PlatformCodeforces, 2, 2).Return([]domain.Handle{
		{Uid: 3, Platform: domain.PlatformCodeforces, Handle: "u3"},
	}, nil)

	f := platformmocks.NewMockFetcher(ctrl)
	f.EXPECT().Platform().Return(domain.PlatformCodeforces).AnyTimes()
	sub := domain.SubmissionEvent{
		URL:         "https://codeforces.com/problemset/problem/1/A",
		Name:        "A",
		Platform:    domain.PlatformCodeforces,
		Status:      domain.StatusAC,
		SubmittedAt: time.UnixMilli(1700000000000),
	}
	f.EXPECT().Submissions(gomock.Any(), "u1").Return([]domain.SubmissionEvent{sub}, nil)
	f.EXPECT().Submissions(gomock.Any(), "u2").Return(nil, errors.New("网络错误"))
	f.EXPECT().Submissions(gomock.Any(), "u3").Return([]domain.SubmissionEvent{sub}, nil)
	f.EXPECT().Contests(gomock.Any(), gomock.Any()).Return([]domain.Contest{}, nil).Times(3)

	producer := &fakeProducer{}
	job := NewPollJob(svc, []platform.Fetcher{f}, producer, 2, 2)
	assert.Equal(t, "tracker_poll_job", job.Name())
	require.NoError(t, job.Run(context.Background()))

	var subUids, contestUids []int64
	keys := map[string]struct{}{}
	for _, evt := range producer.events {
		keys[evt.Key] = struct{}{}
		switch evt.Action {
		case event.ActionSubmission:
			subUids = append(subUids, evt.Uid)
			assert.Equal(t, 1, len(evt.Submissions))
		case event.ActionContest:
			contestUids = append(contestUids, evt.Uid)
		}
		assert.Equal(t, "codeforces", evt.Platform)
	}
	sort.Slice(subUids, func(i, j int) bool { return subUids[i] < subUids[j] })
	sort.Slice(contestUids, func(i, j int) bool { return contestUids[i] < contestUids[j] })
	assert.Equal(t, []int64{1, 3}, subUids)
	assert.Equal(t, []int64{1, 2, 3}, contestUids)
	// 每个批次的 key 都不一样
	assert.Equal(t, 5, len(keys))
}

func TestPollJob_RunListFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := trackermocks.NewMockService(ctrl)
	svc.EXPECT().ListHandles(gomock.Any(), domain.PlatformCodeforces, 0, 100).
		Return(nil, errors.New("mock db error"))
	f := platformmocks.NewMockFetcher(ctrl)
	f.EXPECT().Platform().Return(domain.PlatformCodeforces).AnyTimes()

	job := NewPollJob(svc, []platform.Fetcher{f}, &fakeProducer{}, 0, 0)
	err := job.Run(context.Background())
	assert.ErrorContains(t, err, "mock db error")
}

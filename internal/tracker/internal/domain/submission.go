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

type Status string

const (
	StatusAC  Status = "AC"
	StatusWA  Status = "WA"
	StatusTLE Status = "TLE"
	StatusMLE Status = "MLE"
	StatusRE  Status = "RE"
	StatusCE  Status = "CE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAC, StatusWA, StatusTLE, StatusMLE, StatusRE, StatusCE:
		return true
	default:
		return false
	}
}

func (s Status) ToString() string {
	return string(s)
}

type Platform string

const (
	PlatformCodeforces Platform = "codeforces"
	PlatformCodechef   Platform = "codechef"
	PlatformLeetcode   Platform = "leetcode"
)

// Platforms 展示顺序固定
func Platforms() []Platform {
	return []Platform{PlatformCodeforces, PlatformCodechef, PlatformLeetcode}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformCodeforces, PlatformCodechef, PlatformLeetcode:
		return true
	default:
		return false
	}
}

// SupportsHeatmap 只有 codeforces 能拿到按天的提交记录
func (p Platform) SupportsHeatmap() bool {
	return p == PlatformCodeforces
}

func (p Platform) ToString() string {
	return string(p)
}

// SubmissionEvent 由拉取任务归一化之后的提交记录
type SubmissionEvent struct {
	URL         string
	Name        string
	Platform    Platform
	Difficulty  string
	Tags        []string
	Status      Status
	SubmittedAt time.Time
}

type IngestResult uint8

const (
	IngestResultUnknown IngestResult = iota
	IngestResultStale
	IngestResultAlreadySolved
	IngestResultApplied
	IngestResultRejected
)

func (r IngestResult) String() string {
	switch r {
	case IngestResultStale:
		return "stale"
	case IngestResultAlreadySolved:
		return "already_solved"
	case IngestResultApplied:
		return "applied"
	case IngestResultRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// BatchReport 一批提交记录的处理结果
type BatchReport struct {
	Applied       int
	Stale         int
	AlreadySolved int
	Rejected      int
	// Failed 因为依赖出错而没处理的提交，下一轮拉取会重试
	Failed int
	// SolverFailed 整批保存成功之后登记解题人失败的题目数
	SolverFailed int
	Cutoff       time.Time
}

// Ingestion 单条提交的处理结果，FirstAC 的时候 Pid 需要登记解题人
type Ingestion struct {
	Result  IngestResult
	Pid     int64
	FirstAC bool
}

func (r *BatchReport) Record(res IngestResult) {
	switch res {
	case IngestResultStale:
		r.Stale++
	case IngestResultAlreadySolved:
		r.AlreadySolved++
	case IngestResultApplied:
		r.Applied++
	case IngestResultRejected:
		r.Rejected++
	}
}

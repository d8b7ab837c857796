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

// Connection 一度好友，以及好友在各个平台的账号和最新分数
type Connection struct {
	Uid     int64
	Handles []PlatformHandle
}

type PlatformHandle struct {
	Platform string
	Handle   string
	// Rating 没有参加过比赛的时候为 nil
	Rating *int64
}

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
	"github.com/ecodeclub/algoknight/internal/network/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ToggleReq struct {
	Fid int64 `json:"fid"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
}

type ToggleResp struct {
	Connected bool `json:"connected"`
}

type Connection struct {
	Uid     int64            `json:"uid"`
	Handles []PlatformHandle `json:"handles"`
}

type PlatformHandle struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	Rating   *int64 `json:"rating"`
}

func newConnection(c domain.Connection) Connection {
	return Connection{
		Uid: c.Uid,
		Handles: slice.Map(c.Handles, func(idx int, src domain.PlatformHandle) PlatformHandle {
			return PlatformHandle{
				Platform: src.Platform,
				Handle:   src.Handle,
				Rating:   src.Rating,
			}
		}),
	}
}

func newConnections(cs []domain.Connection) []Connection {
	return slice.Map(cs, func(idx int, src domain.Connection) Connection {
		return newConnection(src)
	})
}

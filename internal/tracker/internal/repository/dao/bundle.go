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

package dao

import (
	"context"
)

//go:generate mockgen -source=./bundle.go -destination=./mocks/bundle.mock.go -package=daomocks BundleDAO
type BundleDAO interface {
	// Find 用户没有任何数据的时候返回空的 Bundle
	Find(ctx context.Context, uid int64) (Bundle, error)
	FindByUids(ctx context.Context, uids []int64) ([]Bundle, error)
	// Save 整体保存，要么全部成功要么全部失败
	Save(ctx context.Context, b Bundle) error
	// ListHandles 分页找出绑定了该平台账号的用户
	ListHandles(ctx context.Context, platform string, offset, limit int) ([]PlatformProfile, error)
	// SearchHandles 所有平台的账号里包含 keyword 的，不区分大小写
	SearchHandles(ctx context.Context, keyword string, limit int) ([]PlatformProfile, error)
}

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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./ecache.go -destination=./mocks/batch.mock.go -package=cachemocks BatchCache
type BatchCache interface {
	// SetNXBatchKey 返回 false 说明这一批已经处理过了
	SetNXBatchKey(ctx context.Context, key string) (bool, error)
	DelBatchKey(ctx context.Context, key string) (int64, error)
}

type batchECache struct {
	ec ecache.Cache
}

func NewBatchECache(ec ecache.Cache) BatchCache {
	return &batchECache{
		ec: &ecache.NamespaceCache{
			Namespace: "tracker:",
			C:         ec,
		},
	}
}

func (b *batchECache) SetNXBatchKey(ctx context.Context, key string) (bool, error) {
	return b.ec.SetNX(ctx, b.batchKey(key), 1, 24*time.Hour)
}

func (b *batchECache) DelBatchKey(ctx context.Context, key string) (int64, error) {
	return b.ec.Delete(ctx, b.batchKey(key))
}

func (b *batchECache) batchKey(key string) string {
	return "batch:" + key
}

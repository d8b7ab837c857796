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

package testioc

import (
	"sync"

	"github.com/ecodeclub/algoknight/ioc"
	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

var (
	cmd           redis.Cmdable
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

func InitRedis() redis.Cmdable {
	cacheInitOnce.Do(func() {
		mustLoadConfig()
		cmd = ioc.InitRedis()
		cache = ioc.InitCache(cmd)
	})
	return cmd
}

// InitCache 和线上使用同一个前缀，测试结束记得清理自己写入的 key
func InitCache() ecache.Cache {
	InitRedis()
	return cache
}

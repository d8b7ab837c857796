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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongoDB 只有 tracker.storage 为 mongo 并且配置了 mongo.uri 的时候才会连接，否则返回 nil
func InitMongoDB() *mongo.Database {
	if econf.GetString("tracker.storage") != "mongo" {
		return nil
	}
	type Config struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	}
	var cfg Config
	err := econf.UnmarshalKey("mongo", &cfg)
	if err != nil || cfg.URI == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		panic(fmt.Errorf("连接 mongo 失败 %w", err))
	}
	if err = client.Ping(ctx, nil); err != nil {
		panic(fmt.Errorf("mongo 不可用 %w", err))
	}
	return client.Database(cfg.Database)
}

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
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/algoknight/internal/pkg/database"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

type dbWaitConfig struct {
	DSN             string        `yaml:"dsn"`
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
	PingTimeout     time.Duration `yaml:"pingTimeout"`
}

func InitDB() *egorm.Component {
	cfg := dbWaitConfig{
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		MaxRetries:      10,
		PingTimeout:     5 * time.Second,
	}
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	if err := waitForDB(context.Background(), cfg); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	// 所有 DAO 的 SQL 都会带上 span
	if err := db.Use(database.NewTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// waitForDB 用 docker compose 拉起来的 MySQL 要等一会儿才能连上
func waitForDB(ctx context.Context, cfg dbWaitConfig) error {
	sqlDB, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(cfg.InitialInterval, cfg.MaxInterval, cfg.MaxRetries)
	if err != nil {
		return err
	}
	for {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待 MySQL 就绪超过重试次数: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}

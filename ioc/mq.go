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

	"github.com/ecodeclub/algoknight/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type kafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []topicConfig `yaml:"topics"`
	// CreateTimeout 启动时建 topic 的超时时间
	CreateTimeout time.Duration `yaml:"createTimeout"`
}

// InitMQ 返回的 MQ 会给生产和消费都加上 span
func InitMQ() mq.MQ {
	cfg := kafkaConfig{CreateTimeout: 15 * time.Second}
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CreateTimeout)
	defer cancel()
	if err = createTopics(ctx, q, cfg.Topics); err != nil {
		panic(err)
	}
	return mqx.NewTracingMQ(q)
}

func createTopics(ctx context.Context, q mq.MQ, topics []topicConfig) error {
	for _, t := range topics {
		partitions := t.Partitions
		if partitions <= 0 {
			partitions = 1
		}
		if err := q.CreateTopic(ctx, t.Name, partitions); err != nil {
			return fmt.Errorf("创建 topic %s 失败, partitions: %d, %w", t.Name, partitions, err)
		}
	}
	return nil
}

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

package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/algoknight/internal/pkg/mqx"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/event/cache"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type Consumer struct {
	handlerMap map[string]handleFunc
	consumer   mq.Consumer
	svc        service.Service
	cache      cache.BatchCache
	logger     *elog.Component
}

func NewTrackerEventConsumer(svc service.Service, c cache.BatchCache, q mq.MQ) (*Consumer, error) {
	groupID := "tracker_group"
	consumer, err := q.Consumer(TrackerEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		handlerMap: map[string]handleFunc{
			ActionSubmission: submissionHandle,
			ActionContest:    contestHandle,
		},
		consumer: consumer,
		svc:      svc,
		cache:    c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	evt, err := mqx.Decode[TrackerEvent](msg)
	if err != nil {
		return err
	}
	handler, ok := c.handlerMap[evt.Action]
	if !ok {
		return errors.New("未找到相关业务的处理方法")
	}

	if evt.Key != "" {
		ok, err = c.cache.SetNXBatchKey(ctx, evt.Key)
		if err != nil {
			// 缓存不可用就直接处理，重复处理也是幂等的
			c.logger.Warn("设置批次标记失败", elog.String("key", evt.Key), elog.FieldErr(err))
		} else if !ok {
			c.logger.Debug("重复投递的批次", elog.String("key", evt.Key))
			return nil
		}
	}

	err = handler(ctx, c.svc, evt)
	if err != nil {
		c.logger.Error("处理拉取结果失败",
			elog.FieldErr(err),
			elog.String("key", evt.Key),
			elog.Int64("uid", evt.Uid),
			elog.String("platform", evt.Platform))
		if evt.Key != "" {
			// 释放标记，重新投递的时候还能处理
			if _, err1 := c.cache.DelBatchKey(ctx, evt.Key); err1 != nil {
				c.logger.Error("释放批次标记失败", elog.String("key", evt.Key), elog.FieldErr(err1))
			}
		}
	}
	return err
}

// Start ctx 结束之后退出
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费拉取事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *Consumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

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
	"errors"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

// StartConsumers ctx 被取消之后消费者会退出循环
func (a *App) StartConsumers(ctx context.Context) {
	for _, c := range a.Consumers {
		c.Start(ctx)
	}
}

func (a *App) StopConsumers(ctx context.Context) error {
	var errs []error
	for _, c := range a.Consumers {
		if err := c.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

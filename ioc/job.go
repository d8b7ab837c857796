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
	"time"

	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(pollJob *tracker.PollJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.poll").Build(ecron.WithJob(funcJobWrapper(pollJob))),
	}
}

func initConsumers(consumer *tracker.Consumer) []Consumer {
	return []Consumer{consumer}
}

// funcJobWrapper 把 NamedJob 适配成 ecron 需要的函数，顺便记录每一轮的耗时
func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		cost := elog.FieldCost(time.Since(start))
		if err != nil {
			logger.Error("定时任务执行失败", elog.FieldErr(err), cost)
			return err
		}
		logger.Info("定时任务执行完毕", cost)
		return nil
	}
}

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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/algoknight/internal/network"
	"github.com/ecodeclub/algoknight/internal/problem"
	"github.com/ecodeclub/algoknight/internal/smartsheet"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMongoDB, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		problem.InitModule,
		tracker.InitModule,
		network.InitModule,
		smartsheet.InitModule,
		wire.FieldsOf(new(*tracker.Module), "Hdl", "PollJob", "Consumer"),
		wire.FieldsOf(new(*network.Module), "Hdl"),
		wire.FieldsOf(new(*smartsheet.Module), "Hdl"),
		InitSession,
		initLogoutHooks,
		initGinxServer,
		initCronJobs,
		initConsumers,
	)
	return new(App), nil
}

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

package smartsheet

import (
	"sync"

	"github.com/ecodeclub/algoknight/internal/network"
	"github.com/ecodeclub/algoknight/internal/problem"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/repository"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/repository/dao"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/service"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/web"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	nm *network.Module,
	tm *tracker.Module,
	pm *problem.Module) *Module {
	wire.Build(
		InitSmartSheetDAO,
		initConfig,
		repository.NewSmartSheetRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*network.Module), "Svc"),
		wire.FieldsOf(new(*tracker.Module), "Svc"),
		wire.FieldsOf(new(*problem.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitSmartSheetDAO(db *egorm.Component) dao.SmartSheetDAO {
	InitTableOnce(db)
	return dao.NewGORMSmartSheetDAO(db)
}

// initConfig 没有配置的时候使用默认值
func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("smartsheet", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

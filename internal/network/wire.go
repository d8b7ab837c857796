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

package network

import (
	"sync"

	"github.com/ecodeclub/algoknight/internal/network/internal/repository"
	"github.com/ecodeclub/algoknight/internal/network/internal/repository/dao"
	"github.com/ecodeclub/algoknight/internal/network/internal/service"
	"github.com/ecodeclub/algoknight/internal/network/internal/web"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, tm *tracker.Module) *Module {
	wire.Build(
		InitFriendshipDAO,
		repository.NewFriendshipRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*tracker.Module), "Svc"),
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

func InitFriendshipDAO(db *egorm.Component) dao.FriendshipDAO {
	InitTableOnce(db)
	return dao.NewGORMFriendshipDAO(db)
}

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

package tracker

import (
	"net/http"
	"sync"

	"github.com/ecodeclub/algoknight/internal/problem"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/event"
	eventcache "github.com/ecodeclub/algoknight/internal/tracker/internal/event/cache"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/job"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/platform"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/repository"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/repository/dao"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *egorm.Component,
	mdb *mongo.Database,
	ec ecache.Cache,
	q mq.MQ,
	pm *problem.Module) (*Module, error) {
	wire.Build(
		InitBundleDAO,
		repository.NewBundleRepository,
		service.NewEngine,
		service.NewService,
		web.NewHandler,
		eventcache.NewBatchECache,
		event.NewTrackerEventProducer,
		event.NewTrackerEventConsumer,
		initFetchers,
		initPollJob,
		wire.FieldsOf(new(*problem.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
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

// InitBundleDAO tracker.storage 取值 mysql 或者 mongo，默认 mysql
func InitBundleDAO(db *egorm.Component, mdb *mongo.Database) dao.BundleDAO {
	if econf.GetString("tracker.storage") == "mongo" {
		if mdb == nil {
			panic("tracker.storage 为 mongo，但是没有配置 mongo")
		}
		return dao.NewMongoBundleDAO(mdb)
	}
	InitTableOnce(db)
	return dao.NewGORMBundleDAO(db)
}

func initFetchers() []platform.Fetcher {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
		Count   int    `yaml:"count"`
	}
	var cfg Config
	err := econf.UnmarshalKey("codeforces", &cfg)
	if err != nil {
		panic(err)
	}
	return []platform.Fetcher{
		platform.NewCodeforcesFetcher(cfg.BaseURL, cfg.Count, http.DefaultClient),
	}
}

func initPollJob(svc service.Service, fetchers []platform.Fetcher, producer event.TrackerEventProducer) *job.PollJob {
	type Config struct {
		Limit       int `yaml:"limit"`
		Concurrency int `yaml:"concurrency"`
	}
	var cfg Config
	err := econf.UnmarshalKey("tracker.poll", &cfg)
	if err != nil {
		panic(err)
	}
	return job.NewPollJob(svc, fetchers, producer, cfg.Limit, cfg.Concurrency)
}

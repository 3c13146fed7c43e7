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

package dashboard

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/event"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/job"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/cache"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/service"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/web"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *egorm.Component,
	mdb *mongo.Database,
	q mq.MQ,
	ec ecache.Cache,
	idGen snowflake.IDGenerator,
	om *opening.Module,
	cm *candidate.Module) (*Module, error) {
	wire.Build(
		InitStatsDAO,
		cache.NewStatsCache,
		repository.NewStatsRepository,
		wire.FieldsOf(new(*opening.Module), "Svc"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		job.NewRefreshStatsJob,
		event.NewCandidateEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initStoreOnce(db *egorm.Component, mdb *mongo.Database) {
	daoOnce.Do(func() {
		var err error
		if mdb != nil {
			err = dao.InitCollections(mdb)
		} else {
			err = dao.InitTables(db)
		}
		if err != nil {
			panic(err)
		}
	})
}

// InitStatsDAO 配置了 mongo 就用 mongo，否则用 MySQL
func InitStatsDAO(db *egorm.Component, mdb *mongo.Database) dao.StatsDAO {
	initStoreOnce(db, mdb)
	if mdb != nil {
		return dao.NewMongoStatsDAO(mdb)
	}
	return dao.NewGORMStatsDAO(db)
}

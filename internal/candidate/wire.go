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

package candidate

import (
	"sync"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/event"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/job"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/service"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/web"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *egorm.Component,
	mdb *mongo.Database,
	q mq.MQ,
	idGen snowflake.IDGenerator,
	om *opening.Module) (*Module, error) {
	wire.Build(
		InitCandidateDAO,
		repository.NewCandidateRepository,
		wire.FieldsOf(new(*opening.Module), "Svc"),
		event.NewCandidateEventProducer,
		service.NewRandomScorer,
		service.NewPlaceholderExtractor,
		service.NewService,
		service.NewIntakeService,
		newStatusService,
		service.NewCounterService,
		service.NewExportService,
		web.NewHandler,
		job.NewReconcileCountersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// newStatusService 入围计数是否去重由 candidate.shortlist.dedup 决定，默认不去重
func newStatusService(repo repository.CandidateRepository,
	openingSvc opening.Service,
	producer event.CandidateEventProducer) service.StatusService {
	return service.NewStatusService(repo, openingSvc, producer,
		econf.GetBool("candidate.shortlist.dedup"))
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

// InitCandidateDAO 配置了 mongo 就用 mongo，否则用 MySQL
func InitCandidateDAO(db *egorm.Component, mdb *mongo.Database) dao.CandidateDAO {
	initStoreOnce(db, mdb)
	if mdb != nil {
		return dao.NewMongoCandidateDAO(mdb)
	}
	return dao.NewGORMCandidateDAO(db)
}

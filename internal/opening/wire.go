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

package opening

import (
	"sync"

	"github.com/ecodeclub/hrhub/internal/opening/internal/repository"
	"github.com/ecodeclub/hrhub/internal/opening/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/opening/internal/service"
	"github.com/ecodeclub/hrhub/internal/opening/internal/web"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitModule(db *egorm.Component, mdb *mongo.Database, idGen snowflake.IDGenerator) *Module {
	wire.Build(
		InitOpeningDAO,
		repository.NewOpeningRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
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

// InitOpeningDAO 配置了 mongo 就用 mongo，否则用 MySQL
func InitOpeningDAO(db *egorm.Component, mdb *mongo.Database) dao.OpeningDAO {
	initStoreOnce(db, mdb)
	if mdb != nil {
		return dao.NewMongoOpeningDAO(mdb)
	}
	return dao.NewGORMOpeningDAO(db)
}

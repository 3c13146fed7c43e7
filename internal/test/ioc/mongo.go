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

package testioc

import (
	"sync"

	"github.com/ecodeclub/hrhub/config"
	"github.com/ecodeclub/hrhub/ioc"
	"github.com/gotomicro/ego/core/econf"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	mdb           *mongo.Database
	mongoInitOnce sync.Once
)

func InitMongoDB() *mongo.Database {
	mongoInitOnce.Do(func() {
		loadConfig()
		var cfg config.MongoConfig
		err := econf.UnmarshalKey("mongo", &cfg)
		if err != nil {
			panic(err)
		}
		mdb = ioc.ConnectMongo(cfg.URI, cfg.Database)
	})
	return mdb
}

// NoMongo 让模块走 MySQL 的实现
func NoMongo() *mongo.Database {
	return nil
}

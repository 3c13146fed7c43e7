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

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hrhub/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongoDB 只有 store.driver 是 mongo 的时候才会连接
func InitMongoDB() *mongo.Database {
	if !loadStoreConfig().IsMongo() {
		return nil
	}
	var cfg config.MongoConfig
	err := econf.UnmarshalKey("mongo", &cfg)
	if err != nil {
		panic(err)
	}
	return ConnectMongo(cfg.URI, cfg.Database)
}

// ConnectMongo 连上并且 ping 通之后才返回
func ConnectMongo(uri, database string) *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		panic(err)
	}
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = client.Ping(ctx, nil)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("ConnectMongo 重试失败......")
		}
		elog.DefaultLogger.Warn("等待 mongo 启动", elog.FieldErr(err))
		time.Sleep(next)
	}
	return client.Database(database)
}

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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hrhub/config"
	"github.com/ecodeclub/hrhub/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	_ "github.com/go-sql-driver/mysql"
)

// InitDB store.driver 配置成 mongo 的时候返回 nil，各个模块会改用 mongo
func InitDB() *egorm.Component {
	if loadStoreConfig().IsMongo() {
		return nil
	}
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

func loadStoreConfig() config.StoreConfig {
	var cfg config.StoreConfig
	err := econf.UnmarshalKey("store", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("等待 MySQL 启动", elog.FieldErr(err))
		time.Sleep(next)
	}
}

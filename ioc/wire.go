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
	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/seed"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitMongoDB, InitMQ, InitRedis, InitCache, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		opening.InitModule,
		candidate.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*opening.Module), "Hdl"),
		wire.FieldsOf(new(*candidate.Module), "Hdl", "ReconcileJob"),
		wire.FieldsOf(new(*dashboard.Module), "Hdl", "RefreshJob"),
		seed.NewJob,
		initGinxServer,
		initCronJobs,
		initJobs,
		initMQConsumers,
	)
	return new(App), nil
}

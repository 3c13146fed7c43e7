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

package config

const (
	DriverMySQL = "mysql"
	DriverMongo = "mongo"
)

// StoreConfig 对应 store 配置，决定三个实体存在哪里
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

// IsMongo 没配置的时候默认用 MySQL
func (c StoreConfig) IsMongo() bool {
	return c.Driver == DriverMongo
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []struct {
		Name       string `yaml:"name"`
		Partitions int    `yaml:"partitions"`
	} `yaml:"topics"`
}

const (
	defaultServiceName    = "hrhub"
	defaultServiceVersion = "v0.0.1"
	defaultZipkinEndpoint = "http://localhost:9411/api/v2/spans"
)

// TraceConfig 对应 trace.zipkin 配置，SampleRatio 取值 (0, 1]，没配置的时候全部采样
type TraceConfig struct {
	ServiceName string  `yaml:"serviceName"`
	Version     string  `yaml:"version"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sampleRatio"`
}

func (c TraceConfig) WithDefaults() TraceConfig {
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
	if c.Version == "" {
		c.Version = defaultServiceVersion
	}
	if c.Endpoint == "" {
		c.Endpoint = defaultZipkinEndpoint
	}
	if c.SampleRatio <= 0 || c.SampleRatio > 1 {
		c.SampleRatio = 1
	}
	return c
}

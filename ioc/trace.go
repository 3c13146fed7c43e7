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
	"time"

	"github.com/ecodeclub/hrhub/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// InitZipkinTracer 按照 trace.zipkin 配置上报链路，
// gorm 的 tracing 插件和 egin 用的都是全局的 provider
func InitZipkinTracer() *trace.TracerProvider {
	tp, err := newTracerProvider(loadTraceConfig())
	if err != nil {
		elog.Panic("初始化 tracer 失败", elog.FieldErr(err))
	}
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	otel.SetTracerProvider(tp)
	return tp
}

func loadTraceConfig() config.TraceConfig {
	var cfg config.TraceConfig
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		elog.Panic("读取 trace 配置失败", elog.FieldErr(err))
	}
	return cfg.WithDefaults()
}

func newTracerProvider(cfg config.TraceConfig) (*trace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, err
	}
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}

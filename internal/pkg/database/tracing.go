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

package database

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/hrhub/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给 GORM 的每一条语句打一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	// gorm 的回调类型不导出，只能一个个注册
	return errors.Join(
		cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")),
		cb.Query().After("gorm:query").Register("tracing:after_query", p.after),
		cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")),
		cb.Create().After("gorm:create").Register("tracing:after_create", p.after),
		cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("tracing:after_update", p.after),
		cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after),
		cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("ROW")),
		cb.Row().After("gorm:row").Register("tracing:after_row", p.after),
		cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after),
	)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		spanName := op
		if db.Statement.Table != "" {
			spanName = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(attribute.String("db.operation", op))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)
	// 查不到数据是业务上的正常情况
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

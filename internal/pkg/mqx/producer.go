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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/hrhub/internal/pkg/mqx"

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// GeneralProducer 把事件序列化成 JSON 发送到固定的 topic
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	tracer   trace.Tracer
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的生产者失败: %w", topic, err)
	}
	return &GeneralProducer[T]{
		producer: p,
		topic:    topic,
		tracer:   otel.GetTracerProvider().Tracer(instrumentationName),
	}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	ctx, span := p.tracer.Start(ctx, "mq.produce", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	data, err := json.Marshal(&evt)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("序列化失败: %w", err)
	}
	span.SetAttributes(
		attribute.String("messaging.destination", p.topic),
		attribute.Int("messaging.message_length", len(data)),
	)
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("向topic=%s发送event=%#v失败: %w", p.topic, evt, err)
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

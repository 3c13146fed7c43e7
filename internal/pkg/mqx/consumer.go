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
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Consumer 反序列化 topic 上的 JSON 事件，交给 handle 处理
type Consumer[T any] struct {
	consumer mq.Consumer
	topic    string
	handle   func(ctx context.Context, evt T) error
	logger   *elog.Component
}

func NewConsumer[T any](q mq.MQ, topic, groupID string,
	handle func(ctx context.Context, evt T) error) (*Consumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的消费者失败: %w", topic, err)
	}
	return &Consumer[T]{
		consumer: c,
		topic:    topic,
		handle:   handle,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *Consumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

// Start 在后台循环消费，ctx 结束时退出
func (c *Consumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				c.logger.Error("消费事件失败",
					elog.String("topic", c.topic),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *Consumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}

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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Action string `json:"action"`
	JobID  int64  `json:"jobId"`
}

func TestProduceAndConsume(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "test_events", 1))

	got := make(chan testEvent, 1)
	consumer, err := NewConsumer[testEvent](q, "test_events", "test_group",
		func(ctx context.Context, evt testEvent) error {
			got <- evt
			return nil
		})
	require.NoError(t, err)

	producer, err := NewGeneralProducer[testEvent](q, "test_events")
	require.NoError(t, err)
	want := testEvent{Action: "intake", JobID: 12}
	require.NoError(t, producer.Produce(ctx, want))

	require.NoError(t, consumer.Consume(ctx))
	select {
	case evt := <-got:
		assert.Equal(t, want, evt)
	case <-ctx.Done():
		t.Fatal("没有收到事件")
	}
	assert.NoError(t, consumer.Stop(ctx))
}

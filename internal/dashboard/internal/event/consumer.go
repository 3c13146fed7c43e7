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
package event

import (
	"context"

	"github.com/ecodeclub/hrhub/internal/dashboard/internal/service"
	"github.com/ecodeclub/hrhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const consumerGroup = "dashboard"

// CandidateEventConsumer 候选人有变化就重新生成一条看板快照
type CandidateEventConsumer struct {
	consumer *mqx.Consumer[CandidateEvent]
	svc      service.Service
	logger   *elog.Component
}

func NewCandidateEventConsumer(svc service.Service, q mq.MQ) (*CandidateEventConsumer, error) {
	c := &CandidateEventConsumer{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
	consumer, err := mqx.NewConsumer[CandidateEvent](q, CandidateEventName, consumerGroup, c.handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *CandidateEventConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *CandidateEventConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}

func (c *CandidateEventConsumer) Stop(ctx context.Context) error {
	return c.consumer.Stop(ctx)
}

func (c *CandidateEventConsumer) handle(ctx context.Context, evt CandidateEvent) error {
	stats, err := c.svc.ComputeSnapshot(ctx)
	if err != nil {
		return err
	}
	c.logger.Debug("候选人变化，刷新看板",
		elog.String("action", evt.Action),
		elog.Int64("jobId", evt.JobID),
		elog.Int64("totalCandidates", stats.TotalCandidates))
	return nil
}

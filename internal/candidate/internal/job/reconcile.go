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
package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcileCountersJob)(nil)

// ReconcileCountersJob 定时修正所有职位的候选人计数
type ReconcileCountersJob struct {
	svc    service.CounterService
	logger *elog.Component
}

func NewReconcileCountersJob(svc service.CounterService) *ReconcileCountersJob {
	return &ReconcileCountersJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *ReconcileCountersJob) Name() string {
	return "ReconcileCountersJob"
}

func (j *ReconcileCountersJob) Run(ctx context.Context) error {
	cnt, err := j.svc.ReconcileAll(ctx)
	if err != nil {
		return fmt.Errorf("修正职位计数失败，已完成 %d 个: %w", cnt, err)
	}
	j.logger.Info("职位计数修正完成", elog.Int("jobs", cnt))
	return nil
}

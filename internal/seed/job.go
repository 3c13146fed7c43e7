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
package seed

import (
	"context"
	"time"

	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
)

// Job 清空三类数据之后写入一批示例数据。
// 候选人走正常的录入流程，所以职位上的计数和候选人是对得上的
type Job struct {
	openingSvc   opening.Service
	candidateSvc candidate.Service
	intakeSvc    candidate.IntakeService
	counterSvc   candidate.CounterService
	statsSvc     dashboard.Service
	logger       *elog.Component
}

func NewJob(om *opening.Module, cm *candidate.Module, dm *dashboard.Module) *Job {
	return &Job{
		openingSvc:   om.Svc,
		candidateSvc: cm.Svc,
		intakeSvc:    cm.IntakeSvc,
		counterSvc:   cm.CounterSvc,
		statsSvc:     dm.Svc,
		logger:       elog.DefaultLogger,
	}
}

func (j *Job) Name() string {
	return "seed"
}

func (j *Job) Start(ctx ejob.Context) error {
	c, cancel := context.WithTimeout(ctx.Ctx, time.Minute)
	defer cancel()
	return j.Run(c)
}

func (j *Job) Run(ctx context.Context) error {
	// 先删快照，再删候选人，最后删职位
	if err := j.statsSvc.Reset(ctx); err != nil {
		return err
	}
	if err := j.candidateSvc.Reset(ctx); err != nil {
		return err
	}
	if err := j.openingSvc.Reset(ctx); err != nil {
		return err
	}
	j.logger.Info("旧数据已清空")

	jobIDs := make([]int64, 0, len(sampleOpenings))
	for _, o := range sampleOpenings {
		id, err := j.openingSvc.Create(ctx, o)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, id)
	}

	// 按下标轮流分配到各个职位上
	batches := make(map[int64][]candidate.CandidateInput, len(jobIDs))
	for i, c := range sampleCandidates() {
		jobID := jobIDs[i%len(jobIDs)]
		batches[jobID] = append(batches[jobID], c)
	}
	for _, jobID := range jobIDs {
		batch := batches[jobID]
		if len(batch) == 0 {
			continue
		}
		if _, err := j.intakeSvc.Intake(ctx, jobID, batch); err != nil {
			return err
		}
	}

	// 录入的时候只累加了候选人数，入围数靠修正补上
	if _, err := j.counterSvc.ReconcileAll(ctx); err != nil {
		return err
	}
	stats, err := j.statsSvc.ComputeSnapshot(ctx)
	if err != nil {
		return err
	}
	j.logger.Info("示例数据写入完成",
		elog.Int("openings", len(jobIDs)),
		elog.Int64("candidates", stats.TotalCandidates))
	return nil
}

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

	"github.com/ecodeclub/hrhub/internal/dashboard/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RefreshStatsJob)(nil)

// RefreshStatsJob 定时追加一条看板快照
type RefreshStatsJob struct {
	svc service.Service
}

func NewRefreshStatsJob(svc service.Service) *RefreshStatsJob {
	return &RefreshStatsJob{svc: svc}
}

func (j *RefreshStatsJob) Name() string {
	return "RefreshStatsJob"
}

func (j *RefreshStatsJob) Run(ctx context.Context) error {
	_, err := j.svc.ComputeSnapshot(ctx)
	return err
}

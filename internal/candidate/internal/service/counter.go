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
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/gotomicro/ego/core/elog"
)

// reconcileAttempts 计数一直在变的时候最多重试几次，剩下的交给下一轮定时任务
const reconcileAttempts = 3

// ErrCountersChanged 修正过程中计数一直被并发修改
var ErrCountersChanged = errors.New("职位计数一直在变化，放弃本次修正")

// CounterService 用候选人的实际数量修正职位上的冗余计数
//go:generate mockgen -source=./counter.go -package=candidatemocks -destination=../../mocks/counter.mock.go CounterService
type CounterService interface {
	Reconcile(ctx context.Context, jobID int64) (domain.JobCount, error)
	// ReconcileAll 逐个职位修正，单个职位失败不影响其他职位，返回修正成功的数量
	ReconcileAll(ctx context.Context) (int, error)
}

type counterService struct {
	repo       repository.CandidateRepository
	openingSvc opening.Service
	logger     *elog.Component
}

func NewCounterService(repo repository.CandidateRepository, openingSvc opening.Service) CounterService {
	return &counterService{
		repo:       repo,
		openingSvc: openingSvc,
		logger:     elog.DefaultLogger,
	}
}

func (s *counterService) Reconcile(ctx context.Context, jobID int64) (domain.JobCount, error) {
	o, err := s.openingSvc.Detail(ctx, jobID)
	if err != nil {
		return domain.JobCount{}, err
	}
	return s.reconcile(ctx, o)
}

// reconcile 先记下职位上的计数再统计，覆盖的时候要求计数没有变过。
// 中间有并发的增量就重新读一遍，避免把别人的增量覆盖掉
func (s *counterService) reconcile(ctx context.Context, o opening.Opening) (domain.JobCount, error) {
	for i := 0; i < reconcileAttempts; i++ {
		if i > 0 {
			var err error
			o, err = s.openingSvc.Detail(ctx, o.ID)
			if err != nil {
				return domain.JobCount{}, err
			}
		}
		cnt, err := s.repo.CountByJob(ctx, o.ID)
		if err != nil {
			return domain.JobCount{}, err
		}
		if cnt.Total == o.CandidateCount && cnt.Shortlisted == o.ShortlistedCount {
			return cnt, nil
		}
		ok, err := s.openingSvc.SetCounters(ctx, o.ID, o.Counters(), opening.Counters{
			Candidates:  cnt.Total,
			Shortlisted: cnt.Shortlisted,
		})
		if err != nil {
			return domain.JobCount{}, err
		}
		if !ok {
			s.logger.Debug("职位计数被并发修改，重新统计", elog.Int64("jobId", o.ID), elog.Int("attempt", i))
			continue
		}
		s.logger.Info("修正职位计数",
			elog.Int64("jobId", o.ID),
			elog.Int64("candidateCount", o.CandidateCount),
			elog.Int64("actualCandidates", cnt.Total),
			elog.Int64("shortlistedCount", o.ShortlistedCount),
			elog.Int64("actualShortlisted", cnt.Shortlisted))
		return cnt, nil
	}
	return domain.JobCount{}, fmt.Errorf("%w: 职位 %d", ErrCountersChanged, o.ID)
}

func (s *counterService) ReconcileAll(ctx context.Context) (int, error) {
	jobs, err := s.openingSvc.List(ctx)
	if err != nil {
		return 0, err
	}
	var (
		errs []error
		cnt  int
	)
	for _, o := range jobs {
		if _, err = s.reconcile(ctx, o); err != nil {
			errs = append(errs, fmt.Errorf("jobId=%d: %w", o.ID, err))
			continue
		}
		cnt++
	}
	return cnt, errors.Join(errs...)
}

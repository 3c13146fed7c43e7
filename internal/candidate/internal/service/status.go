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
	"fmt"
	"time"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/event"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/gotomicro/ego/core/elog"
)

type StatusService interface {
	// Shortlist jobID 不为 0 时职位的 shortlistedCount 加一，
	// 默认每次调用都加，开启去重之后已经入围的候选人不会重复计数。
	// 状态写入之后计数更新失败，会同时返回已经入围的候选人和错误，计数等 reconcile 修正
	Shortlist(ctx context.Context, id int64, jobID int64) (domain.Candidate, error)
	Reject(ctx context.Context, id int64) (domain.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Candidate, error)
}

type statusService struct {
	repo       repository.CandidateRepository
	openingSvc opening.Service
	producer   event.CandidateEventProducer
	dedup      bool
	logger     *elog.Component
}

func NewStatusService(repo repository.CandidateRepository,
	openingSvc opening.Service,
	producer event.CandidateEventProducer,
	dedup bool) StatusService {
	return &statusService{
		repo:       repo,
		openingSvc: openingSvc,
		producer:   producer,
		dedup:      dedup,
		logger:     elog.DefaultLogger,
	}
}

func (s *statusService) Shortlist(ctx context.Context, id int64, jobID int64) (domain.Candidate, error) {
	prev, err := s.repo.UpdateStatus(ctx, id, domain.StatusShortlisted)
	if err != nil {
		return domain.Candidate{}, err
	}
	var incrErr error
	if jobID != 0 && !(s.dedup && prev == domain.StatusShortlisted) {
		found, err1 := s.openingSvc.IncrShortlistedCount(ctx, jobID, 1)
		switch {
		case err1 != nil:
			incrErr = fmt.Errorf("候选人已入围，更新职位计数失败: %w", err1)
			s.logger.Error("更新入围计数失败",
				elog.Int64("candidateId", id),
				elog.Int64("jobId", jobID),
				elog.FieldErr(err1))
		case !found:
			s.logger.Warn("职位不存在，跳过入围计数",
				elog.Int64("candidateId", id),
				elog.Int64("jobId", jobID))
		}
	}
	c, err := s.afterTransition(ctx, id, jobID, prev, domain.StatusShortlisted)
	if err != nil {
		return domain.Candidate{}, err
	}
	return c, incrErr
}

func (s *statusService) Reject(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.transit(ctx, id, domain.StatusRejected)
}

func (s *statusService) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Candidate, error) {
	if !status.Valid() {
		return domain.Candidate{}, bizerr.Validation("候选人状态 %q 不合法", status)
	}
	return s.transit(ctx, id, status)
}

func (s *statusService) transit(ctx context.Context, id int64, status domain.Status) (domain.Candidate, error) {
	prev, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Candidate{}, err
	}
	return s.afterTransition(ctx, id, 0, prev, status)
}

func (s *statusService) afterTransition(ctx context.Context, id, jobID int64,
	prev, status domain.Status) (domain.Candidate, error) {
	statusTransitionTotal.WithLabelValues(status.String()).Inc()
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	if jobID == 0 {
		jobID = c.JobID
	}
	err = s.producer.Produce(ctx, event.CandidateEvent{
		Action:       event.ActionStatus,
		JobID:        jobID,
		CandidateIDs: []int64{id},
		Status:       status.String(),
		PrevStatus:   prev.String(),
		Ctime:        time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送候选人事件失败",
			elog.Int64("candidateId", id),
			elog.FieldErr(err))
	}
	return c, nil
}

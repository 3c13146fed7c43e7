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

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCandidateNotFound = repository.ErrCandidateNotFound

//go:generate mockgen -source=./candidate.go -package=candidatemocks -destination=../../mocks/candidate.mock.go Service
type Service interface {
	List(ctx context.Context) ([]domain.Candidate, error)
	Detail(ctx context.Context, id int64) (domain.Candidate, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Candidate, error)
	// Counts 一次查询得到总数、入围数和新候选人数
	Counts(ctx context.Context) (domain.StatusCount, error)
	// Reset 清空全部候选人
	Reset(ctx context.Context) error
}

type service struct {
	repo   repository.CandidateRepository
	logger *elog.Component
}

func NewService(repo repository.CandidateRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) List(ctx context.Context) ([]domain.Candidate, error) {
	return s.repo.List(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListByJob(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	return s.repo.ListByJob(ctx, jobID)
}

func (s *service) Counts(ctx context.Context) (domain.StatusCount, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *service) Reset(ctx context.Context) error {
	err := s.repo.DeleteAll(ctx)
	if err == nil {
		s.logger.Warn("已清空全部候选人")
	}
	return err
}

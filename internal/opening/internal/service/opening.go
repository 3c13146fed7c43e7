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

	"github.com/ecodeclub/hrhub/internal/opening/internal/domain"
	"github.com/ecodeclub/hrhub/internal/opening/internal/repository"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ecodeclub/hrhub/internal/pkg/validatex"
	"github.com/gotomicro/ego/core/elog"
)

var ErrOpeningNotFound = repository.ErrOpeningNotFound

//go:generate mockgen -source=./opening.go -package=openingmocks -destination=../../mocks/opening.mock.go Service
type Service interface {
	Create(ctx context.Context, o domain.Opening) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Opening, error)
	List(ctx context.Context) ([]domain.Opening, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error

	// IncrCandidateCount 和 IncrShortlistedCount 都是原子操作，
	// 职位不存在的时候返回 false 而不是错误
	IncrCandidateCount(ctx context.Context, id int64, delta int64) (bool, error)
	IncrShortlistedCount(ctx context.Context, id int64, delta int64) (bool, error)
	// SetCounters 用实际统计出来的数字覆盖冗余计数。
	// 只有当前计数还等于 old 的时候才会覆盖，否则返回 false，调用方重新统计
	SetCounters(ctx context.Context, id int64, old, actual domain.Counters) (bool, error)

	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	// Reset 清空全部职位
	Reset(ctx context.Context) error
}

type service struct {
	repo   repository.OpeningRepository
	idGen  snowflake.IDGenerator
	logger *elog.Component
}

func NewService(repo repository.OpeningRepository, idGen snowflake.IDGenerator) Service {
	return &service{
		repo:   repo,
		idGen:  idGen,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, o domain.Opening) (int64, error) {
	if o.Status == "" {
		o.Status = domain.StatusActive
	}
	if err := validatex.Struct(o); err != nil {
		return 0, err
	}
	id, err := s.idGen.Generate(snowflake.BizOpening)
	if err != nil {
		return 0, fmt.Errorf("生成职位ID失败: %w", err)
	}
	o.ID = id.Int64()
	// 计数只能由候选人模块维护
	o.CandidateCount, o.ShortlistedCount = 0, 0
	return s.repo.Create(ctx, o)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Opening, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]domain.Opening, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return bizerr.Validation("职位状态 %q 不合法", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) IncrCandidateCount(ctx context.Context, id int64, delta int64) (bool, error) {
	return s.repo.IncrCounters(ctx, id, delta, 0)
}

func (s *service) IncrShortlistedCount(ctx context.Context, id int64, delta int64) (bool, error) {
	return s.repo.IncrCounters(ctx, id, 0, delta)
}

func (s *service) SetCounters(ctx context.Context, id int64, old, actual domain.Counters) (bool, error) {
	if actual.Candidates < 0 || actual.Shortlisted < 0 {
		return false, bizerr.Validation("计数不能为负数 candidates=%d shortlisted=%d", actual.Candidates, actual.Shortlisted)
	}
	return s.repo.SetCounters(ctx, id, old, actual)
}

func (s *service) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *service) Reset(ctx context.Context) error {
	err := s.repo.DeleteAll(ctx)
	if err == nil {
		s.logger.Warn("已清空全部职位")
	}
	return err
}

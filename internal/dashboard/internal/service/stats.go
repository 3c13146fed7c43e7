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
	"time"

	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 100
)

//go:generate mockgen -source=./stats.go -package=dashboardmocks -destination=../../mocks/stats.mock.go Service
type Service interface {
	// ComputeSnapshot 重新统计并追加一条快照
	ComputeSnapshot(ctx context.Context) (domain.Stats, error)
	// GetCurrentSnapshot 返回最新的快照，一条都没有的时候现算一条
	GetCurrentSnapshot(ctx context.Context) (domain.Stats, error)
	History(ctx context.Context, limit int) ([]domain.Stats, error)
	// Reset 清空全部快照
	Reset(ctx context.Context) error
}

type service struct {
	repo         repository.StatsRepository
	openingSvc   opening.Service
	candidateSvc candidate.Service
	idGen        snowflake.IDGenerator
	logger       *elog.Component
}

func NewService(repo repository.StatsRepository,
	openingSvc opening.Service,
	candidateSvc candidate.Service,
	idGen snowflake.IDGenerator) Service {
	return &service{
		repo:         repo,
		openingSvc:   openingSvc,
		candidateSvc: candidateSvc,
		idGen:        idGen,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) ComputeSnapshot(ctx context.Context) (domain.Stats, error) {
	var (
		eg   errgroup.Group
		open int64
		cnt  candidate.StatusCount
	)
	eg.Go(func() error {
		var err error
		open, err = s.openingSvc.CountByStatus(ctx, opening.StatusActive)
		return err
	})
	eg.Go(func() error {
		var err error
		cnt, err = s.candidateSvc.Counts(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Stats{}, err
	}
	id, err := s.idGen.Generate(snowflake.BizStats)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("生成快照ID失败: %w", err)
	}
	stats := domain.Stats{
		ID:                    id.Int64(),
		OpenPositions:         open,
		TotalCandidates:       cnt.Total,
		ShortlistedCandidates: cnt.Shortlisted,
		NewCandidates:         cnt.New,
		HiringRate:            domain.HiringRate(cnt.Shortlisted, cnt.Total),
		LastUpdated:           time.Now().UnixMilli(),
	}
	if err = s.repo.Append(ctx, stats); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

func (s *service) GetCurrentSnapshot(ctx context.Context) (domain.Stats, error) {
	stats, err := s.repo.Latest(ctx)
	if errors.Is(err, repository.ErrStatsNotFound) {
		s.logger.Info("还没有看板快照，现在生成")
		return s.ComputeSnapshot(ctx)
	}
	return stats, err
}

func (s *service) History(ctx context.Context, limit int) ([]domain.Stats, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.List(ctx, min(limit, maxHistoryLimit))
}

func (s *service) Reset(ctx context.Context) error {
	err := s.repo.DeleteAll(ctx)
	if err == nil {
		s.logger.Warn("已清空全部看板快照")
	}
	return err
}

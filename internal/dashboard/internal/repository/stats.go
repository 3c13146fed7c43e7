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
package repository

import (
	"context"

	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/cache"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/gotomicro/ego/core/elog"
)

var ErrStatsNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./stats.go -package=repomocks -destination=./mocks/stats.mock.go StatsRepository
type StatsRepository interface {
	Append(ctx context.Context, s domain.Stats) error
	Latest(ctx context.Context) (domain.Stats, error)
	List(ctx context.Context, limit int) ([]domain.Stats, error)
	DeleteAll(ctx context.Context) error
}

// statsRepository 最新的快照走缓存，其余直接查库
type statsRepository struct {
	dao    dao.StatsDAO
	cache  cache.StatsCache
	logger *elog.Component
}

func NewStatsRepository(d dao.StatsDAO, c cache.StatsCache) StatsRepository {
	return &statsRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *statsRepository) Append(ctx context.Context, s domain.Stats) error {
	err := r.dao.Insert(ctx, r.toEntity(s))
	if err != nil {
		return bizerr.Storage(err)
	}
	if err = r.cache.SetLatest(ctx, s); err != nil {
		r.logger.Warn("写入快照缓存失败", elog.FieldErr(err))
		r.evict(ctx)
	}
	return nil
}

// Latest 回填只用 FillLatest，避免查库之后才写入的旧快照盖掉 Append 写进去的新快照
func (r *statsRepository) Latest(ctx context.Context) (domain.Stats, error) {
	res, err := r.cache.GetLatest(ctx)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("查询快照缓存失败", elog.FieldErr(err))
	}
	s, err := r.dao.Latest(ctx)
	if err != nil {
		return domain.Stats{}, bizerr.Storage(err)
	}
	res = r.toDomain(s)
	if err = r.cache.FillLatest(ctx, res); err != nil {
		r.logger.Warn("回写快照缓存失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *statsRepository) List(ctx context.Context, limit int) ([]domain.Stats, error) {
	list, err := r.dao.List(ctx, limit)
	return slice.Map(list, func(idx int, src dao.DashboardStats) domain.Stats {
		return r.toDomain(src)
	}), bizerr.Storage(err)
}

func (r *statsRepository) DeleteAll(ctx context.Context) error {
	err := r.dao.DeleteAll(ctx)
	if err != nil {
		return bizerr.Storage(err)
	}
	r.evict(ctx)
	return nil
}

// evict 删不掉的时候最多读到旧快照，等过期就好
func (r *statsRepository) evict(ctx context.Context) {
	if err := r.cache.DelLatest(ctx); err != nil {
		r.logger.Warn("删除快照缓存失败", elog.FieldErr(err))
	}
}

func (r *statsRepository) toEntity(s domain.Stats) dao.DashboardStats {
	return dao.DashboardStats{
		Id:                    s.ID,
		OpenPositions:         s.OpenPositions,
		TotalCandidates:       s.TotalCandidates,
		ShortlistedCandidates: s.ShortlistedCandidates,
		NewCandidates:         s.NewCandidates,
		HiringRate:            s.HiringRate,
		LastUpdated:           s.LastUpdated,
	}
}

func (r *statsRepository) toDomain(s dao.DashboardStats) domain.Stats {
	return domain.Stats{
		ID:                    s.Id,
		OpenPositions:         s.OpenPositions,
		TotalCandidates:       s.TotalCandidates,
		ShortlistedCandidates: s.ShortlistedCandidates,
		NewCandidates:         s.NewCandidates,
		HiringRate:            s.HiringRate,
		LastUpdated:           s.LastUpdated,
	}
}

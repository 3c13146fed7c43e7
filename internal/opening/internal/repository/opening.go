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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hrhub/internal/opening/internal/domain"
	"github.com/ecodeclub/hrhub/internal/opening/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
)

var ErrOpeningNotFound = dao.ErrRecordNotFound

type OpeningRepository interface {
	Create(ctx context.Context, o domain.Opening) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Opening, error)
	List(ctx context.Context) ([]domain.Opening, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	IncrCounters(ctx context.Context, id int64, candidateDelta, shortlistedDelta int64) (bool, error)
	SetCounters(ctx context.Context, id int64, old, actual domain.Counters) (bool, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	DeleteAll(ctx context.Context) error
}

type openingRepository struct {
	dao dao.OpeningDAO
}

func NewOpeningRepository(d dao.OpeningDAO) OpeningRepository {
	return &openingRepository{dao: d}
}

func (r *openingRepository) Create(ctx context.Context, o domain.Opening) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(o))
	return id, bizerr.Storage(err)
}

func (r *openingRepository) FindByID(ctx context.Context, id int64) (domain.Opening, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Opening{}, bizerr.Storage(err)
	}
	return r.toDomain(o), nil
}

func (r *openingRepository) List(ctx context.Context) ([]domain.Opening, error) {
	list, err := r.dao.List(ctx)
	if err != nil {
		return nil, bizerr.Storage(err)
	}
	return slice.Map(list, func(idx int, src dao.JobOpening) domain.Opening {
		return r.toDomain(src)
	}), nil
}

func (r *openingRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return bizerr.Storage(r.dao.UpdateStatus(ctx, id, status.String()))
}

func (r *openingRepository) IncrCounters(ctx context.Context, id int64, candidateDelta, shortlistedDelta int64) (bool, error) {
	found, err := r.dao.IncrCounters(ctx, id, candidateDelta, shortlistedDelta)
	return found, bizerr.Storage(err)
}

func (r *openingRepository) SetCounters(ctx context.Context, id int64, old, actual domain.Counters) (bool, error) {
	ok, err := r.dao.SetCounters(ctx, id, old.Candidates, old.Shortlisted, actual.Candidates, actual.Shortlisted)
	return ok, bizerr.Storage(err)
}

func (r *openingRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	cnt, err := r.dao.CountByStatus(ctx, status.String())
	return cnt, bizerr.Storage(err)
}

func (r *openingRepository) DeleteAll(ctx context.Context) error {
	return bizerr.Storage(r.dao.DeleteAll(ctx))
}

func (r *openingRepository) toEntity(o domain.Opening) dao.JobOpening {
	return dao.JobOpening{
		Id:          o.ID,
		Title:       o.Title,
		Department:  o.Department,
		Location:    o.Location,
		Type:        o.Type.String(),
		Status:      o.Status.String(),
		Description: o.Description,
		Requirements: sqlx.JsonColumn[[]string]{
			Val:   o.Requirements,
			Valid: len(o.Requirements) > 0,
		},
		CandidateCount:   o.CandidateCount,
		ShortlistedCount: o.ShortlistedCount,
		Ctime:            o.Ctime,
		Utime:            o.Utime,
	}
}

func (r *openingRepository) toDomain(o dao.JobOpening) domain.Opening {
	return domain.Opening{
		ID:               o.Id,
		Title:            o.Title,
		Department:       o.Department,
		Location:         o.Location,
		Type:             domain.JobType(o.Type),
		Status:           domain.Status(o.Status),
		Description:      o.Description,
		Requirements:     o.Requirements.Val,
		CandidateCount:   o.CandidateCount,
		ShortlistedCount: o.ShortlistedCount,
		Ctime:            o.Ctime,
		Utime:            o.Utime,
	}
}

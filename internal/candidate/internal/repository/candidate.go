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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
)

var (
	ErrCandidateNotFound = dao.ErrRecordNotFound
	ErrDuplicateEmail    = dao.ErrDuplicateEmail
)

//go:generate mockgen -source=./candidate.go -package=repomocks -destination=./mocks/candidate.mock.go CandidateRepository
type CandidateRepository interface {
	BatchCreate(ctx context.Context, cs []domain.Candidate) error
	FindByID(ctx context.Context, id int64) (domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Status, error)
	CountByStatus(ctx context.Context) (domain.StatusCount, error)
	CountByJob(ctx context.Context, jobID int64) (domain.JobCount, error)
	DeleteAll(ctx context.Context) error
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

func (r *candidateRepository) BatchCreate(ctx context.Context, cs []domain.Candidate) error {
	entities := slice.Map(cs, func(idx int, src domain.Candidate) dao.Candidate {
		return r.toEntity(src)
	})
	return bizerr.Storage(r.dao.BatchCreate(ctx, entities))
}

func (r *candidateRepository) FindByID(ctx context.Context, id int64) (domain.Candidate, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, bizerr.Storage(err)
	}
	return r.toDomain(c), nil
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	cs, err := r.dao.List(ctx)
	return r.toDomains(cs), bizerr.Storage(err)
}

func (r *candidateRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	cs, err := r.dao.ListByJob(ctx, jobID)
	return r.toDomains(cs), bizerr.Storage(err)
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Status, error) {
	prev, err := r.dao.UpdateStatus(ctx, id, status.String())
	return domain.Status(prev), bizerr.Storage(err)
}

func (r *candidateRepository) CountByStatus(ctx context.Context) (domain.StatusCount, error) {
	cnt, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return domain.StatusCount{}, bizerr.Storage(err)
	}
	return domain.StatusCount{
		Total:       cnt.Total,
		Shortlisted: cnt.Shortlisted,
		New:         cnt.New,
	}, nil
}

func (r *candidateRepository) CountByJob(ctx context.Context, jobID int64) (domain.JobCount, error) {
	cnt, err := r.dao.CountByJob(ctx, jobID)
	if err != nil {
		return domain.JobCount{}, bizerr.Storage(err)
	}
	return domain.JobCount{
		JobID:       jobID,
		Total:       cnt.Total,
		Shortlisted: cnt.Shortlisted,
	}, nil
}

func (r *candidateRepository) DeleteAll(ctx context.Context) error {
	return bizerr.Storage(r.dao.DeleteAll(ctx))
}

func (r *candidateRepository) toDomains(cs []dao.Candidate) []domain.Candidate {
	return slice.Map(cs, func(idx int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	})
}

func (r *candidateRepository) toEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		Id:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Skills: sqlx.JsonColumn[[]string]{Val: c.Skills, Valid: true},
		Experience: sqlx.JsonColumn[[]dao.Experience]{
			Val: slice.Map(c.Experience, func(idx int, src domain.Experience) dao.Experience {
				return dao.Experience(src)
			}),
			Valid: true,
		},
		Education: sqlx.JsonColumn[[]dao.Education]{
			Val: slice.Map(c.Education, func(idx int, src domain.Education) dao.Education {
				return dao.Education(src)
			}),
			Valid: true,
		},
		ResumeUrl:  c.ResumeURL,
		MatchScore: sql.NullInt64{Int64: int64(c.MatchScore), Valid: c.HasScore},
		Status:     c.Status.String(),
		JobId:      c.JobID,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
}

func (r *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:     c.Id,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Skills: c.Skills.Val,
		Experience: slice.Map(c.Experience.Val, func(idx int, src dao.Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Education: slice.Map(c.Education.Val, func(idx int, src dao.Education) domain.Education {
			return domain.Education(src)
		}),
		ResumeURL:  c.ResumeUrl,
		MatchScore: int(c.MatchScore.Int64),
		HasScore:   c.MatchScore.Valid,
		Status:     domain.Status(c.Status),
		JobID:      c.JobId,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
}

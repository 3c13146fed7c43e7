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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	statusNew         = "new"
	statusShortlisted = "shortlisted"

	batchSize = 100
)

var (
	ErrRecordNotFound = bizerr.ErrNotFound
	ErrDuplicateEmail = fmt.Errorf("%w: 邮箱已存在", bizerr.ErrConflict)
)

type CandidateDAO interface {
	// BatchCreate 要么全部成功，要么一个都不创建
	BatchCreate(ctx context.Context, cs []Candidate) error
	FindByID(ctx context.Context, id int64) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	ListByJob(ctx context.Context, jobID int64) ([]Candidate, error)
	// UpdateStatus 返回更新之前的状态，读和写是原子的
	UpdateStatus(ctx context.Context, id int64, status string) (string, error)
	CountByStatus(ctx context.Context) (StatusCount, error)
	CountByJob(ctx context.Context, jobID int64) (StatusCount, error)
	DeleteAll(ctx context.Context) error
}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) *GORMCandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (g *GORMCandidateDAO) BatchCreate(ctx context.Context, cs []Candidate) error {
	if len(cs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range cs {
		cs[i].Ctime = now
		cs[i].Utime = now
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&cs, batchSize).Error
	})
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, me.Message)
		}
	}
	return err
}

func (g *GORMCandidateDAO) FindByID(ctx context.Context, id int64) (Candidate, error) {
	var res Candidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Candidate{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMCandidateDAO) List(ctx context.Context) ([]Candidate, error) {
	var res []Candidate
	err := g.db.WithContext(ctx).Order("ctime ASC, id ASC").Find(&res).Error
	return res, err
}

func (g *GORMCandidateDAO) ListByJob(ctx context.Context, jobID int64) ([]Candidate, error) {
	var res []Candidate
	err := g.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMCandidateDAO) UpdateStatus(ctx context.Context, id int64, status string) (string, error) {
	var prev string
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Candidate
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status").
			Where("id = ?", id).
			First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		if err != nil {
			return err
		}
		prev = c.Status
		return tx.Model(&Candidate{}).Where("id = ?", id).
			Updates(map[string]any{
				"status": status,
				"utime":  time.Now().UnixMilli(),
			}).Error
	})
	return prev, err
}

func (g *GORMCandidateDAO) CountByStatus(ctx context.Context) (StatusCount, error) {
	var res StatusCount
	err := g.countQuery(ctx).Scan(&res).Error
	return res, err
}

func (g *GORMCandidateDAO) CountByJob(ctx context.Context, jobID int64) (StatusCount, error) {
	var res StatusCount
	err := g.countQuery(ctx).Where("job_id = ?", jobID).Scan(&res).Error
	return res, err
}

// countQuery 一条 SQL 把总数和各状态的数量都算出来，保证它们来自同一个快照
func (g *GORMCandidateDAO) countQuery(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Model(&Candidate{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS shortlisted_cnt, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS new_cnt",
			statusShortlisted, statusNew)
}

func (g *GORMCandidateDAO) DeleteAll(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("1 = 1").Delete(&Candidate{}).Error
}

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
	"time"

	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = bizerr.ErrNotFound

type OpeningDAO interface {
	Create(ctx context.Context, o JobOpening) (int64, error)
	FindByID(ctx context.Context, id int64) (JobOpening, error)
	// List 按照创建时间倒序
	List(ctx context.Context) ([]JobOpening, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// IncrCounters 原子地增加计数，职位不存在的时候返回 false
	IncrCounters(ctx context.Context, id int64, candidateDelta, shortlistedDelta int64) (bool, error)
	// SetCounters 只在计数仍然是 oldCandidates 和 oldShortlisted 的时候覆盖，
	// 返回 false 说明计数已经被别人改了
	SetCounters(ctx context.Context, id int64, oldCandidates, oldShortlisted, candidates, shortlisted int64) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	DeleteAll(ctx context.Context) error
}

type GORMOpeningDAO struct {
	db *egorm.Component
}

func NewGORMOpeningDAO(db *egorm.Component) *GORMOpeningDAO {
	return &GORMOpeningDAO{db: db}
}

func (g *GORMOpeningDAO) Create(ctx context.Context, o JobOpening) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	err := g.db.WithContext(ctx).Create(&o).Error
	return o.Id, err
}

func (g *GORMOpeningDAO) FindByID(ctx context.Context, id int64) (JobOpening, error) {
	var res JobOpening
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JobOpening{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMOpeningDAO) List(ctx context.Context) ([]JobOpening, error) {
	var res []JobOpening
	err := g.db.WithContext(ctx).Order("ctime DESC, id DESC").Find(&res).Error
	return res, err
}

func (g *GORMOpeningDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := g.db.WithContext(ctx).Model(&JobOpening{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.mustExist(ctx, id)
	}
	return nil
}

func (g *GORMOpeningDAO) IncrCounters(ctx context.Context, id int64, candidateDelta, shortlistedDelta int64) (bool, error) {
	if candidateDelta == 0 && shortlistedDelta == 0 {
		err := g.mustExist(ctx, id)
		if errors.Is(err, ErrRecordNotFound) {
			return false, nil
		}
		return err == nil, err
	}
	res := g.db.WithContext(ctx).Model(&JobOpening{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"candidate_count":   gorm.Expr("`candidate_count` + ?", candidateDelta),
			"shortlisted_count": gorm.Expr("`shortlisted_count` + ?", shortlistedDelta),
			"utime":             time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMOpeningDAO) SetCounters(ctx context.Context, id int64, oldCandidates, oldShortlisted, candidates, shortlisted int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&JobOpening{}).
		Where("id = ? AND candidate_count = ? AND shortlisted_count = ?", id, oldCandidates, oldShortlisted).
		Updates(map[string]any{
			"candidate_count":   candidates,
			"shortlisted_count": shortlisted,
			"utime":             time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, g.mustExist(ctx, id)
	}
	return true, nil
}

func (g *GORMOpeningDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&JobOpening{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMOpeningDAO) DeleteAll(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("1 = 1").Delete(&JobOpening{}).Error
}

// mustExist 在更新没有影响任何行的时候，区分数据不存在和数据没有变化
func (g *GORMOpeningDAO) mustExist(ctx context.Context, id int64) error {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&JobOpening{}).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrRecordNotFound
	}
	return nil
}

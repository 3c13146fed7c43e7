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

	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = bizerr.ErrNotFound

//go:generate mockgen -source=./stats.go -package=daomocks -destination=./mocks/stats.mock.go StatsDAO
type StatsDAO interface {
	Insert(ctx context.Context, s DashboardStats) error
	// Latest 返回 lastUpdated 最大的快照，一个都没有的时候返回 ErrRecordNotFound
	Latest(ctx context.Context) (DashboardStats, error)
	// List 按照 lastUpdated 倒序
	List(ctx context.Context, limit int) ([]DashboardStats, error)
	DeleteAll(ctx context.Context) error
}

type GORMStatsDAO struct {
	db *egorm.Component
}

func NewGORMStatsDAO(db *egorm.Component) *GORMStatsDAO {
	return &GORMStatsDAO{db: db}
}

func (g *GORMStatsDAO) Insert(ctx context.Context, s DashboardStats) error {
	return g.db.WithContext(ctx).Create(&s).Error
}

func (g *GORMStatsDAO) Latest(ctx context.Context) (DashboardStats, error) {
	var res DashboardStats
	err := g.db.WithContext(ctx).Order("last_updated DESC, id DESC").First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DashboardStats{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMStatsDAO) List(ctx context.Context, limit int) ([]DashboardStats, error) {
	var res []DashboardStats
	err := g.db.WithContext(ctx).Order("last_updated DESC, id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMStatsDAO) DeleteAll(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("1 = 1").Delete(&DashboardStats{}).Error
}

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
	"sync"
	"testing"

	"github.com/ecodeclub/ecache/memory/lru"

	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/cache"
	cachemocks "github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/cache/mocks"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/dao"
	daomocks "github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/dao/mocks"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsRepository_Latest(t *testing.T) {
	snapshot := domain.Stats{ID: 3, OpenPositions: 2, TotalCandidates: 3, ShortlistedCandidates: 1, HiringRate: 33.3, LastUpdated: 123}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache)
		want    domain.Stats
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				c.EXPECT().GetLatest(gomock.Any()).Return(snapshot, nil)
				return d, c
			},
			want: snapshot,
		},
		{
			name: "没有命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				c.EXPECT().GetLatest(gomock.Any()).Return(domain.Stats{}, cache.ErrKeyNotFound)
				d.EXPECT().Latest(gomock.Any()).Return(dao.DashboardStats{
					Id: 3, OpenPositions: 2, TotalCandidates: 3, ShortlistedCandidates: 1, HiringRate: 33.3, LastUpdated: 123,
				}, nil)
				c.EXPECT().FillLatest(gomock.Any(), snapshot).Return(nil)
				return d, c
			},
			want: snapshot,
		},
		{
			name: "缓存出错也能查库",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				c.EXPECT().GetLatest(gomock.Any()).Return(domain.Stats{}, errors.New("mock redis error"))
				d.EXPECT().Latest(gomock.Any()).Return(dao.DashboardStats{
					Id: 3, OpenPositions: 2, TotalCandidates: 3, ShortlistedCandidates: 1, HiringRate: 33.3, LastUpdated: 123,
				}, nil)
				c.EXPECT().FillLatest(gomock.Any(), snapshot).Return(errors.New("mock redis error"))
				return d, c
			},
			want: snapshot,
		},
		{
			name: "没有快照",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				c.EXPECT().GetLatest(gomock.Any()).Return(domain.Stats{}, cache.ErrKeyNotFound)
				d.EXPECT().Latest(gomock.Any()).Return(dao.DashboardStats{}, dao.ErrRecordNotFound)
				return d, c
			},
			wantErr: ErrStatsNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewStatsRepository(tc.mock(ctrl))
			got, err := repo.Latest(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatsRepository_Append(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache)
		wantErr error
	}{
		{
			name: "写入之后更新缓存",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				d.EXPECT().Insert(gomock.Any(), dao.DashboardStats{Id: 1, LastUpdated: 123}).Return(nil)
				c.EXPECT().SetLatest(gomock.Any(), domain.Stats{ID: 1, LastUpdated: 123}).Return(nil)
				return d, c
			},
		},
		{
			name: "更新缓存失败就删掉缓存",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				d.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				c.EXPECT().SetLatest(gomock.Any(), gomock.Any()).Return(errors.New("mock redis error"))
				c.EXPECT().DelLatest(gomock.Any()).Return(nil)
				return d, c
			},
		},
		{
			name: "写入失败不动缓存",
			mock: func(ctrl *gomock.Controller) (dao.StatsDAO, cache.StatsCache) {
				d := daomocks.NewMockStatsDAO(ctrl)
				c := cachemocks.NewMockStatsCache(ctrl)
				d.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return d, c
			},
			wantErr: bizerr.ErrStorage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewStatsRepository(tc.mock(ctrl))
			err := repo.Append(context.Background(), domain.Stats{ID: 1, LastUpdated: 123})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// 读请求查完库还没回填的时候写入了新快照，之后读到的必须是新快照
func TestStatsRepository_LatestAfterConcurrentAppend(t *testing.T) {
	d := &blockingStatsDAO{
		rows:   []dao.DashboardStats{{Id: 1, TotalCandidates: 1, LastUpdated: 100}},
		block:  true,
		read:   make(chan struct{}),
		resume: make(chan struct{}),
	}
	repo := NewStatsRepository(d, cache.NewStatsCache(lru.NewCache(16)))
	ctx := context.Background()

	stale := make(chan domain.Stats, 1)
	go func() {
		s, err := repo.Latest(ctx)
		assert.NoError(t, err)
		stale <- s
	}()
	<-d.read
	err := repo.Append(ctx, domain.Stats{ID: 2, TotalCandidates: 2, LastUpdated: 200})
	require.NoError(t, err)
	close(d.resume)
	assert.Equal(t, int64(1), (<-stale).ID)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{ID: 2, TotalCandidates: 2, LastUpdated: 200}, got)
}

// blockingStatsDAO 第一次 Latest 读完数据之后停住，等测试放行
type blockingStatsDAO struct {
	dao.StatsDAO
	mu     sync.Mutex
	rows   []dao.DashboardStats
	block  bool
	read   chan struct{}
	resume chan struct{}
}

func (d *blockingStatsDAO) Insert(ctx context.Context, s dao.DashboardStats) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append(d.rows, s)
	return nil
}

func (d *blockingStatsDAO) Latest(ctx context.Context) (dao.DashboardStats, error) {
	d.mu.Lock()
	res := d.rows[len(d.rows)-1]
	block := d.block
	d.block = false
	d.mu.Unlock()
	if block {
		d.read <- struct{}{}
		<-d.resume
	}
	return res, nil
}

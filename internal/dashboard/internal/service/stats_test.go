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
	"testing"

	"github.com/ecodeclub/hrhub/internal/candidate"
	candidatemocks "github.com/ecodeclub/hrhub/internal/candidate/mocks"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/repository"
	repomocks "github.com/ecodeclub/hrhub/internal/dashboard/internal/repository/mocks"
	"github.com/ecodeclub/hrhub/internal/opening"
	openingmocks "github.com/ecodeclub/hrhub/internal/opening/mocks"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type statsMocks struct {
	repo      *repomocks.MockStatsRepository
	opening   *openingmocks.MockService
	candidate *candidatemocks.MockService
}

func newStatsMocks(ctrl *gomock.Controller) statsMocks {
	return statsMocks{
		repo:      repomocks.NewMockStatsRepository(ctrl),
		opening:   openingmocks.NewMockService(ctrl),
		candidate: candidatemocks.NewMockService(ctrl),
	}
}

func (m statsMocks) newService(t *testing.T) Service {
	idGen, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	return NewService(m.repo, m.opening, m.candidate, idGen)
}

func TestService_ComputeSnapshot(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(m statsMocks)
		wantStats domain.Stats
		wantErr   error
	}{
		{
			name: "正常统计",
			mock: func(m statsMocks) {
				m.opening.EXPECT().CountByStatus(gomock.Any(), opening.StatusActive).Return(int64(3), nil)
				m.candidate.EXPECT().Counts(gomock.Any()).
					Return(candidate.StatusCount{Total: 3, Shortlisted: 2, New: 1}, nil)
				m.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStats: domain.Stats{
				OpenPositions:         3,
				TotalCandidates:       3,
				ShortlistedCandidates: 2,
				NewCandidates:         1,
				HiringRate:            66.7,
			},
		},
		{
			name: "没有候选人",
			mock: func(m statsMocks) {
				m.opening.EXPECT().CountByStatus(gomock.Any(), opening.StatusActive).Return(int64(1), nil)
				m.candidate.EXPECT().Counts(gomock.Any()).Return(candidate.StatusCount{}, nil)
				m.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStats: domain.Stats{OpenPositions: 1},
		},
		{
			name: "统计失败不写快照",
			mock: func(m statsMocks) {
				m.opening.EXPECT().CountByStatus(gomock.Any(), opening.StatusActive).Return(int64(1), nil)
				m.candidate.EXPECT().Counts(gomock.Any()).
					Return(candidate.StatusCount{}, errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newStatsMocks(ctrl)
			tc.mock(m)
			stats, err := m.newService(t).ComputeSnapshot(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, stats.ID)
			assert.NotZero(t, stats.LastUpdated)
			stats.ID, stats.LastUpdated = 0, 0
			assert.Equal(t, tc.wantStats, stats)
		})
	}
}

func TestService_ComputeSnapshotTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStatsMocks(ctrl)
	m.opening.EXPECT().CountByStatus(gomock.Any(), opening.StatusActive).Return(int64(2), nil).Times(2)
	m.candidate.EXPECT().Counts(gomock.Any()).
		Return(candidate.StatusCount{Total: 10, Shortlisted: 4, New: 5}, nil).Times(2)
	var appended []domain.Stats
	m.repo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s domain.Stats) error {
			appended = append(appended, s)
			return nil
		}).Times(2)

	svc := m.newService(t)
	first, err := svc.ComputeSnapshot(context.Background())
	require.NoError(t, err)
	second, err := svc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	// 数据没有变化，数字一样，但是是两条不同的快照
	require.Len(t, appended, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.GreaterOrEqual(t, second.LastUpdated, first.LastUpdated)
	first.ID, first.LastUpdated = 0, 0
	second.ID, second.LastUpdated = 0, 0
	assert.Equal(t, first, second)
	assert.Equal(t, 40.0, first.HiringRate)
}

func TestService_GetCurrentSnapshot(t *testing.T) {
	t.Run("已经有快照", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStatsMocks(ctrl)
		latest := domain.Stats{ID: 9, OpenPositions: 12, TotalCandidates: 256, LastUpdated: 1700000000000}
		m.repo.EXPECT().Latest(gomock.Any()).Return(latest, nil)
		stats, err := m.newService(t).GetCurrentSnapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, latest, stats)
	})

	t.Run("没有快照时现算", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStatsMocks(ctrl)
		m.repo.EXPECT().Latest(gomock.Any()).Return(domain.Stats{}, repository.ErrStatsNotFound)
		m.opening.EXPECT().CountByStatus(gomock.Any(), opening.StatusActive).Return(int64(0), nil)
		m.candidate.EXPECT().Counts(gomock.Any()).Return(candidate.StatusCount{}, nil)
		m.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		stats, err := m.newService(t).GetCurrentSnapshot(context.Background())
		require.NoError(t, err)
		assert.Zero(t, stats.HiringRate)
		assert.NotZero(t, stats.ID)
	})
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStatsMocks(ctrl)
	m.repo.EXPECT().List(gomock.Any(), defaultHistoryLimit).Return(nil, nil)
	m.repo.EXPECT().List(gomock.Any(), maxHistoryLimit).Return(nil, nil)
	svc := m.newService(t)
	_, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.History(context.Background(), 1000)
	require.NoError(t, err)
}

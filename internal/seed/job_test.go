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
package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hrhub/internal/candidate"
	candidatemocks "github.com/ecodeclub/hrhub/internal/candidate/mocks"
	"github.com/ecodeclub/hrhub/internal/dashboard"
	dashboardmocks "github.com/ecodeclub/hrhub/internal/dashboard/mocks"
	"github.com/ecodeclub/hrhub/internal/opening"
	openingmocks "github.com/ecodeclub/hrhub/internal/opening/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	opening   *openingmocks.MockService
	candidate *candidatemocks.MockService
	intake    *candidatemocks.MockIntakeService
	counter   *candidatemocks.MockCounterService
	stats     *dashboardmocks.MockService
}

func newJob(ctrl *gomock.Controller) (*Job, mocks) {
	m := mocks{
		opening:   openingmocks.NewMockService(ctrl),
		candidate: candidatemocks.NewMockService(ctrl),
		intake:    candidatemocks.NewMockIntakeService(ctrl),
		counter:   candidatemocks.NewMockCounterService(ctrl),
		stats:     dashboardmocks.NewMockService(ctrl),
	}
	j := NewJob(&opening.Module{Svc: m.opening},
		&candidate.Module{Svc: m.candidate, IntakeSvc: m.intake, CounterSvc: m.counter},
		&dashboard.Module{Svc: m.stats})
	return j, m
}

func TestJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	j, m := newJob(ctrl)

	gomock.InOrder(
		m.stats.EXPECT().Reset(gomock.Any()).Return(nil),
		m.candidate.EXPECT().Reset(gomock.Any()).Return(nil),
		m.opening.EXPECT().Reset(gomock.Any()).Return(nil),
	)
	var titles []string
	nextID := int64(0)
	m.opening.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, o opening.Opening) (int64, error) {
			titles = append(titles, o.Title)
			nextID++
			return nextID, nil
		}).Times(3)
	emails := map[int64][]string{}
	m.intake.EXPECT().Intake(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, jobID int64, batch []candidate.CandidateInput) (candidate.IntakeResult, error) {
			for _, c := range batch {
				emails[jobID] = append(emails[jobID], c.Email)
			}
			return candidate.IntakeResult{IDs: make([]int64, len(batch)), JobLinked: true}, nil
		}).Times(3)
	m.counter.EXPECT().ReconcileAll(gomock.Any()).Return(3, nil)
	m.stats.EXPECT().ComputeSnapshot(gomock.Any()).Return(dashboard.Stats{TotalCandidates: 3}, nil)

	err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Frontend Developer", "UX Designer", "Data Scientist"}, titles)
	assert.Equal(t, map[int64][]string{
		1: {"alex.j@example.com"},
		2: {"sam.w@example.com"},
		3: {"jamie.l@example.com"},
	}, emails)
}

func TestJob_RunError(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "清空失败",
			mock: func(m mocks) {
				m.stats.EXPECT().Reset(gomock.Any()).Return(nil)
				m.candidate.EXPECT().Reset(gomock.Any()).Return(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "录入失败",
			mock: func(m mocks) {
				m.stats.EXPECT().Reset(gomock.Any()).Return(nil)
				m.candidate.EXPECT().Reset(gomock.Any()).Return(nil)
				m.opening.EXPECT().Reset(gomock.Any()).Return(nil)
				m.opening.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(3)
				m.intake.EXPECT().Intake(gomock.Any(), int64(1), gomock.Any()).
					Return(candidate.IntakeResult{}, candidate.ErrDuplicateEmail)
			},
			wantErr: candidate.ErrDuplicateEmail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			j, m := newJob(ctrl)
			tc.mock(m)
			err := j.Run(context.Background())
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestSampleCandidates(t *testing.T) {
	cs := sampleCandidates()
	require.Len(t, cs, 3)
	*cs[0].MatchScore = 10
	// 每次调用互不影响
	assert.Equal(t, 92, *sampleCandidates()[0].MatchScore)
	assert.Equal(t, candidate.StatusShortlisted, cs[2].Status)
}

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
	"testing"

	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/event"
	evtmocks "github.com/ecodeclub/hrhub/internal/candidate/internal/event/mocks"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	repomocks "github.com/ecodeclub/hrhub/internal/candidate/internal/repository/mocks"
	"github.com/ecodeclub/hrhub/internal/opening"
	openingmocks "github.com/ecodeclub/hrhub/internal/opening/mocks"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJobID int64 = 1001

func validInput(email string) domain.CandidateInput {
	return domain.CandidateInput{
		Name:   "Alex Johnson",
		Email:  email,
		Skills: []string{"React", "TypeScript"},
		Experience: []domain.Experience{
			{Role: "Frontend Developer", Company: "Tech Co", Duration: "2020-2023"},
		},
		Education: []domain.Education{
			{Degree: "B.S. Computer Science", Institution: "University of Technology", Year: "2018"},
		},
	}
}

type intakeMocks struct {
	repo     *repomocks.MockCandidateRepository
	opening  *openingmocks.MockService
	producer *evtmocks.MockCandidateEventProducer
}

func newIntakeService(t *testing.T, m intakeMocks) IntakeService {
	idGen, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	return NewIntakeService(m.repo, m.opening, idGen, NewRandomScorer(), NewPlaceholderExtractor(), m.producer)
}

func TestIntakeService_Intake(t *testing.T) {
	score := 88
	testCases := []struct {
		name  string
		jobID int64
		batch []domain.CandidateInput
		mock  func(ctrl *gomock.Controller) intakeMocks

		wantLinked bool
		wantCnt    int
		wantErr    error
	}{
		{
			name:  "职位存在，计数增加批次大小",
			jobID: testJobID,
			batch: []domain.CandidateInput{validInput("a@example.com"), validInput("b@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				openingSvc := openingmocks.NewMockService(ctrl)
				producer := evtmocks.NewMockCandidateEventProducer(ctrl)
				openingSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(opening.Opening{ID: testJobID}, nil)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cs []domain.Candidate) error {
						require.Len(t, cs, 2)
						for _, c := range cs {
							assert.Equal(t, testJobID, c.JobID)
							assert.Equal(t, domain.StatusNew, c.Status)
							assert.NotZero(t, c.ID)
						}
						return nil
					})
				openingSvc.EXPECT().IncrCandidateCount(gomock.Any(), testJobID, int64(2)).Return(true, nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.CandidateEvent) error {
						assert.Equal(t, event.ActionIntake, evt.Action)
						assert.Equal(t, testJobID, evt.JobID)
						assert.Len(t, evt.CandidateIDs, 2)
						return nil
					})
				return intakeMocks{repo: repo, opening: openingSvc, producer: producer}
			},
			wantLinked: true,
			wantCnt:    2,
		},
		{
			name:  "职位不存在，进入公共人才库且不报错",
			jobID: testJobID,
			batch: []domain.CandidateInput{validInput("a@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				openingSvc := openingmocks.NewMockService(ctrl)
				producer := evtmocks.NewMockCandidateEventProducer(ctrl)
				openingSvc.EXPECT().Detail(gomock.Any(), testJobID).
					Return(opening.Opening{}, opening.ErrOpeningNotFound)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cs []domain.Candidate) error {
						require.Len(t, cs, 1)
						assert.Zero(t, cs[0].JobID)
						return nil
					})
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return intakeMocks{repo: repo, opening: openingSvc, producer: producer}
			},
			wantLinked: false,
			wantCnt:    1,
		},
		{
			name:  "没有职位",
			batch: []domain.CandidateInput{validInput("a@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				producer := evtmocks.NewMockCandidateEventProducer(ctrl)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return intakeMocks{repo: repo, opening: openingmocks.NewMockService(ctrl), producer: producer}
			},
			wantCnt: 1,
		},
		{
			name:  "保留调用方给的状态和分数",
			batch: []domain.CandidateInput{
				func() domain.CandidateInput {
					in := validInput("a@example.com")
					in.MatchScore = &score
					in.Status = domain.StatusShortlisted
					return in
				}(),
			},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				producer := evtmocks.NewMockCandidateEventProducer(ctrl)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cs []domain.Candidate) error {
						assert.Equal(t, score, cs[0].MatchScore)
						assert.True(t, cs[0].HasScore)
						assert.Equal(t, domain.StatusShortlisted, cs[0].Status)
						return nil
					})
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return intakeMocks{repo: repo, opening: openingmocks.NewMockService(ctrl), producer: producer}
			},
			wantCnt: 1,
		},
		{
			name:  "发送事件失败不影响结果",
			batch: []domain.CandidateInput{validInput("a@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				producer := evtmocks.NewMockCandidateEventProducer(ctrl)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
				return intakeMocks{repo: repo, opening: openingmocks.NewMockService(ctrl), producer: producer}
			},
			wantCnt: 1,
		},
		{
			name:  "缺少邮箱",
			jobID: testJobID,
			batch: []domain.CandidateInput{validInput("a@example.com"), validInput("")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				return intakeMocks{
					repo:     repomocks.NewMockCandidateRepository(ctrl),
					opening:  openingmocks.NewMockService(ctrl),
					producer: evtmocks.NewMockCandidateEventProducer(ctrl),
				}
			},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "技能为空",
			batch: []domain.CandidateInput{
				func() domain.CandidateInput {
					in := validInput("a@example.com")
					in.Skills = nil
					return in
				}(),
			},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				return intakeMocks{
					repo:     repomocks.NewMockCandidateRepository(ctrl),
					opening:  openingmocks.NewMockService(ctrl),
					producer: evtmocks.NewMockCandidateEventProducer(ctrl),
				}
			},
			wantErr: bizerr.ErrValidation,
		},
		{
			name:  "同一批里面邮箱重复",
			batch: []domain.CandidateInput{validInput("a@example.com"), validInput(" A@example.com ")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				return intakeMocks{
					repo:     repomocks.NewMockCandidateRepository(ctrl),
					opening:  openingmocks.NewMockService(ctrl),
					producer: evtmocks.NewMockCandidateEventProducer(ctrl),
				}
			},
			wantErr: bizerr.ErrValidation,
		},
		{
			name:  "空批次",
			batch: nil,
			mock: func(ctrl *gomock.Controller) intakeMocks {
				return intakeMocks{
					repo:     repomocks.NewMockCandidateRepository(ctrl),
					opening:  openingmocks.NewMockService(ctrl),
					producer: evtmocks.NewMockCandidateEventProducer(ctrl),
				}
			},
			wantErr: bizerr.ErrValidation,
		},
		{
			name:  "邮箱已经存在",
			jobID: testJobID,
			batch: []domain.CandidateInput{validInput("a@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				openingSvc := openingmocks.NewMockService(ctrl)
				openingSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(opening.Opening{ID: testJobID}, nil)
				repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateEmail)
				return intakeMocks{repo: repo, opening: openingSvc, producer: evtmocks.NewMockCandidateEventProducer(ctrl)}
			},
			wantErr: bizerr.ErrConflict,
		},
		{
			name:  "查询职位失败",
			jobID: testJobID,
			batch: []domain.CandidateInput{validInput("a@example.com")},
			mock: func(ctrl *gomock.Controller) intakeMocks {
				openingSvc := openingmocks.NewMockService(ctrl)
				openingSvc.EXPECT().Detail(gomock.Any(), testJobID).
					Return(opening.Opening{}, bizerr.Storage(errors.New("mock db error")))
				return intakeMocks{
					repo:     repomocks.NewMockCandidateRepository(ctrl),
					opening:  openingSvc,
					producer: evtmocks.NewMockCandidateEventProducer(ctrl),
				}
			},
			wantErr: bizerr.ErrStorage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newIntakeService(t, tc.mock(ctrl))
			res, err := svc.Intake(context.Background(), tc.jobID, tc.batch)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantLinked, res.JobLinked)
			assert.Len(t, res.IDs, tc.wantCnt)
		})
	}
}

func TestIntakeService_IntakeScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCandidateRepository(ctrl)
	producer := evtmocks.NewMockCandidateEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cs []domain.Candidate) error {
			for _, c := range cs {
				assert.True(t, c.HasScore)
				assert.GreaterOrEqual(t, c.MatchScore, 60)
				assert.LessOrEqual(t, c.MatchScore, 100)
			}
			return nil
		})
	svc := newIntakeService(t, intakeMocks{
		repo:     repo,
		opening:  openingmocks.NewMockService(ctrl),
		producer: producer,
	})
	batch := make([]domain.CandidateInput, 0, 50)
	for i := 0; i < 50; i++ {
		batch = append(batch, validInput(fmt.Sprintf("c%d@example.com", i)))
	}
	_, err := svc.Intake(context.Background(), 0, batch)
	require.NoError(t, err)
}

func TestIntakeService_UploadResumes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCandidateRepository(ctrl)
	openingSvc := openingmocks.NewMockService(ctrl)
	producer := evtmocks.NewMockCandidateEventProducer(ctrl)
	openingSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(opening.Opening{ID: testJobID}, nil)
	repo.EXPECT().BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cs []domain.Candidate) error {
			require.Len(t, cs, 3)
			for _, c := range cs {
				assert.NotEmpty(t, c.Email)
				assert.NotEmpty(t, c.Skills)
				assert.NotEmpty(t, c.ResumeURL)
			}
			return nil
		})
	openingSvc.EXPECT().IncrCandidateCount(gomock.Any(), testJobID, int64(3)).Return(true, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	svc := newIntakeService(t, intakeMocks{repo: repo, opening: openingSvc, producer: producer})

	resumes := []domain.Resume{{FileName: "a.pdf"}, {FileName: "b.pdf"}, {FileName: "c.pdf"}}
	res, err := svc.UploadResumes(context.Background(), testJobID, resumes, nil)
	require.NoError(t, err)
	assert.True(t, res.JobLinked)
	assert.Len(t, res.IDs, 3)

	_, err = svc.UploadResumes(context.Background(), testJobID, nil, nil)
	assert.ErrorIs(t, err, bizerr.ErrValidation)
}

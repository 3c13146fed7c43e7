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
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/event"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/repository"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ecodeclub/hrhub/internal/pkg/validatex"
	"github.com/gotomicro/ego/core/elog"
)

var ErrDuplicateEmail = repository.ErrDuplicateEmail

// MaxUploadCount 一次最多处理的简历数量
const MaxUploadCount = 100

//go:generate mockgen -source=./intake.go -package=candidatemocks -destination=../../mocks/intake.mock.go IntakeService
type IntakeService interface {
	// Intake 批量录入候选人，要么全部成功，要么一个都不写入。
	// jobID 对应的职位不存在的时候，候选人进入公共人才库，不返回错误
	Intake(ctx context.Context, jobID int64, batch []domain.CandidateInput) (domain.IntakeResult, error)
	// UploadResumes inputs 不为空的时候直接录入，否则逐份解析简历之后再录入
	UploadResumes(ctx context.Context, jobID int64, resumes []domain.Resume, inputs []domain.CandidateInput) (domain.IntakeResult, error)
}

type intakeService struct {
	repo       repository.CandidateRepository
	openingSvc opening.Service
	idGen      snowflake.IDGenerator
	scorer     Scorer
	extractor  ResumeExtractor
	producer   event.CandidateEventProducer
	logger     *elog.Component
}

func NewIntakeService(repo repository.CandidateRepository,
	openingSvc opening.Service,
	idGen snowflake.IDGenerator,
	scorer Scorer,
	extractor ResumeExtractor,
	producer event.CandidateEventProducer) IntakeService {
	return &intakeService{
		repo:       repo,
		openingSvc: openingSvc,
		idGen:      idGen,
		scorer:     scorer,
		extractor:  extractor,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *intakeService) Intake(ctx context.Context, jobID int64, batch []domain.CandidateInput) (domain.IntakeResult, error) {
	batch, err := s.normalize(batch)
	if err != nil {
		return domain.IntakeResult{}, err
	}
	linked, err := s.jobExists(ctx, jobID)
	if err != nil {
		return domain.IntakeResult{}, err
	}
	var owner int64
	if linked {
		owner = jobID
	}

	now := time.Now().UnixMilli()
	cs := make([]domain.Candidate, 0, len(batch))
	for _, in := range batch {
		id, err1 := s.idGen.Generate(snowflake.BizCandidate)
		if err1 != nil {
			return domain.IntakeResult{}, fmt.Errorf("生成候选人ID失败: %w", err1)
		}
		cs = append(cs, s.newCandidate(ctx, id.Int64(), owner, now, in))
	}
	err = s.repo.BatchCreate(ctx, cs)
	if err != nil {
		return domain.IntakeResult{}, err
	}
	res := domain.IntakeResult{
		IDs: slice.Map(cs, func(idx int, src domain.Candidate) int64 {
			return src.ID
		}),
		JobLinked: linked,
	}
	intakeTotal.WithLabelValues(strconv.FormatBool(linked)).Add(float64(len(cs)))

	if linked {
		found, err1 := s.openingSvc.IncrCandidateCount(ctx, jobID, int64(len(cs)))
		if err1 != nil {
			// 候选人已经写入，计数留给对账任务修正
			s.logger.Error("更新职位候选人计数失败",
				elog.Int64("jobId", jobID),
				elog.Int("delta", len(cs)),
				elog.FieldErr(err1))
			return res, fmt.Errorf("候选人已录入，更新职位计数失败: %w", err1)
		}
		if !found {
			s.logger.Warn("职位在录入过程中被删除，跳过计数", elog.Int64("jobId", jobID))
		}
	}

	s.produce(ctx, event.CandidateEvent{
		Action:       event.ActionIntake,
		JobID:        owner,
		CandidateIDs: res.IDs,
		Ctime:        now,
	})
	return res, nil
}

func (s *intakeService) UploadResumes(ctx context.Context, jobID int64,
	resumes []domain.Resume, inputs []domain.CandidateInput) (domain.IntakeResult, error) {
	if len(inputs) > 0 {
		return s.Intake(ctx, jobID, inputs)
	}
	if len(resumes) == 0 {
		return domain.IntakeResult{}, bizerr.Validation("没有需要处理的简历")
	}
	if len(resumes) > MaxUploadCount {
		return domain.IntakeResult{}, bizerr.Validation("一次最多上传 %d 份简历", MaxUploadCount)
	}
	batch := make([]domain.CandidateInput, 0, len(resumes))
	for _, r := range resumes {
		in, err := s.extractor.Extract(ctx, r)
		if err != nil {
			return domain.IntakeResult{}, fmt.Errorf("解析简历 %s 失败: %w", r.FileName, err)
		}
		batch = append(batch, in)
	}
	return s.Intake(ctx, jobID, batch)
}

// normalize 清理邮箱并校验整批数据，任何一条不合法整批拒绝
func (s *intakeService) normalize(batch []domain.CandidateInput) ([]domain.CandidateInput, error) {
	if len(batch) == 0 {
		return nil, bizerr.Validation("候选人列表不能为空")
	}
	res := make([]domain.CandidateInput, 0, len(batch))
	seen := make(map[string]int, len(batch))
	var errs []error
	for i, in := range batch {
		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.ToLower(strings.TrimSpace(in.Email))
		if err := validatex.Struct(in); err != nil {
			errs = append(errs, fmt.Errorf("第 %d 个候选人: %w", i+1, err))
			continue
		}
		if j, ok := seen[in.Email]; ok {
			errs = append(errs, bizerr.Validation("第 %d 个候选人的邮箱 %s 和第 %d 个重复", i+1, in.Email, j+1))
			continue
		}
		seen[in.Email] = i
		res = append(res, in)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

func (s *intakeService) jobExists(ctx context.Context, jobID int64) (bool, error) {
	if jobID == 0 {
		return false, nil
	}
	_, err := s.openingSvc.Detail(ctx, jobID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, opening.ErrOpeningNotFound):
		s.logger.Warn("职位不存在，候选人进入公共人才库", elog.Int64("jobId", jobID))
		return false, nil
	default:
		return false, err
	}
}

func (s *intakeService) newCandidate(ctx context.Context, id, jobID, now int64, in domain.CandidateInput) domain.Candidate {
	c := domain.Candidate{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Skills:     in.Skills,
		Experience: in.Experience,
		Education:  in.Education,
		ResumeURL:  in.ResumeURL,
		Status:     in.Status,
		JobID:      jobID,
		HasScore:   true,
		Ctime:      now,
		Utime:      now,
	}
	if c.Status == "" {
		c.Status = domain.StatusNew
	}
	if in.MatchScore != nil {
		c.MatchScore = *in.MatchScore
	} else {
		c.MatchScore = s.scorer.Score(ctx, in)
	}
	return c
}

func (s *intakeService) produce(ctx context.Context, evt event.CandidateEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送候选人事件失败",
			elog.String("action", evt.Action),
			elog.FieldErr(err))
	}
}

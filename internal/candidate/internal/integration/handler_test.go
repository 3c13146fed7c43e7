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
//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/errs"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/integration/startup"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/web"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/snowflake"
	"github.com/ecodeclub/hrhub/internal/test"
	testioc "github.com/ecodeclub/hrhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	opening *opening.Module
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	idGen, err := snowflake.NewGenerator(1)
	require.NoError(s.T(), err)
	om := opening.InitModule(testioc.InitDB(), testioc.NoMongo(), idGen)
	m, err := startup.InitModule(idGen, om)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.opening = om
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `candidates`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `job_openings`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) createJob() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	id, err := s.opening.Svc.Create(ctx, opening.Opening{
		Title:        "Frontend Developer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         opening.TypeFullTime,
		Description:  "Build UI",
		Requirements: []string{"React"},
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) job(id int64) opening.Opening {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	o, err := s.opening.Svc.Detail(ctx, id)
	require.NoError(s.T(), err)
	return o
}

func (s *HandlerTestSuite) upload(req web.UploadResumesReq, wantCode int) test.Result[web.UploadResumesResp] {
	httpReq, err := http.NewRequest(http.MethodPost, "/api/candidates/upload-resumes", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.UploadResumesResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), wantCode, recorder.Code)
	return recorder.MustScan()
}

func candidateInput(i int) web.CandidateInput {
	return web.CandidateInput{
		Name:   fmt.Sprintf("候选人 %d", i),
		Email:  fmt.Sprintf("c%d@example.com", i),
		Skills: []string{"Go", "MySQL"},
	}
}

func (s *HandlerTestSuite) TestUploadResumes() {
	t := s.T()
	jobID := s.createJob()

	resp := s.upload(web.UploadResumesReq{
		JobID:      jobID,
		Candidates: []web.CandidateInput{candidateInput(1), candidateInput(2)},
	}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)
	assert.Len(t, resp.Data.IDs, 2)
	assert.True(t, resp.Data.JobLinked)
	assert.Equal(t, int64(2), s.job(jobID).CandidateCount)

	// 没有结构化数据的时候按 count 生成
	resp = s.upload(web.UploadResumesReq{JobID: jobID, Count: 3}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)
	assert.Equal(t, 3, resp.Data.Uploaded)
	assert.Equal(t, int64(5), s.job(jobID).CandidateCount)

	// 职位不存在也能录入
	resp = s.upload(web.UploadResumesReq{JobID: jobID + 1, Candidates: []web.CandidateInput{candidateInput(3)}}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)
	assert.False(t, resp.Data.JobLinked)

	// 邮箱重复整批失败，计数不变
	resp = s.upload(web.UploadResumesReq{
		JobID:      jobID,
		Candidates: []web.CandidateInput{candidateInput(4), candidateInput(1)},
	}, http.StatusInternalServerError)
	assert.Equal(t, errs.EmailConflict.Code, resp.Code)
	assert.Equal(t, int64(5), s.job(jobID).CandidateCount)
	var cnt int64
	require.NoError(t, s.db.Table("candidates").Where("email = ?", "c4@example.com").Count(&cnt).Error)
	assert.Zero(t, cnt)

	// 缺少必填字段
	invalid := candidateInput(5)
	invalid.Skills = nil
	resp = s.upload(web.UploadResumesReq{JobID: jobID, Candidates: []web.CandidateInput{invalid}}, http.StatusInternalServerError)
	assert.Equal(t, errs.InvalidInput.Code, resp.Code)
}

func (s *HandlerTestSuite) TestShortlistAndReconcile() {
	t := s.T()
	jobID := s.createJob()
	resp := s.upload(web.UploadResumesReq{
		JobID:      jobID,
		Candidates: []web.CandidateInput{candidateInput(1), candidateInput(2)},
	}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)
	cid := resp.Data.IDs[0]

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodPatch, "/api/candidates/"+cid+"/shortlist",
			iox.NewJSONReader(web.ShortlistReq{JobID: jobID}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.ShortlistResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		res := recorder.MustScan()
		require.Zero(t, res.Code, res.Msg)
		assert.True(t, res.Data.Success)
		assert.Equal(t, "shortlisted", res.Data.Candidate.Status)
	}
	// 默认不去重，入围两次计两次
	assert.Equal(t, int64(2), s.job(jobID).ShortlistedCount)

	req, err := http.NewRequest(http.MethodPatch, "/api/candidates/123/shortlist",
		iox.NewJSONReader(web.ShortlistReq{JobID: jobID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ShortlistResp]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.CandidateNotFound.Code, recorder.MustScan().Code)
	assert.Equal(t, int64(2), s.job(jobID).ShortlistedCount)

	req, err = http.NewRequest(http.MethodPost, fmt.Sprintf("/api/candidates/job/%d/reconcile", jobID), nil)
	require.NoError(t, err)
	reconcile := test.NewJSONResponseRecorder[web.ReconcileResp]()
	s.server.ServeHTTP(reconcile, req)
	res := reconcile.MustScan()
	require.Zero(t, res.Code, res.Msg)
	assert.Equal(t, int64(2), res.Data.CandidateCount)
	assert.Equal(t, int64(1), res.Data.ShortlistedCount)
	assert.Equal(t, int64(1), s.job(jobID).ShortlistedCount)
}

func (s *HandlerTestSuite) TestListAndStatus() {
	t := s.T()
	jobID := s.createJob()
	resp := s.upload(web.UploadResumesReq{JobID: jobID, Candidates: []web.CandidateInput{candidateInput(1)}}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)
	resp = s.upload(web.UploadResumesReq{Candidates: []web.CandidateInput{candidateInput(2)}}, http.StatusOK)
	require.Zero(t, resp.Code, resp.Msg)

	req, err := http.NewRequest(http.MethodGet, "/api/candidates", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.Candidate]()
	s.server.ServeHTTP(recorder, req)
	all := recorder.MustScan().Data
	require.Len(t, all, 2)
	assert.Equal(t, "c1@example.com", all[0].Email)
	assert.Equal(t, jobID, all[0].JobID)
	assert.Zero(t, all[1].JobID)
	require.NotNil(t, all[0].MatchScore)
	assert.GreaterOrEqual(t, *all[0].MatchScore, 60)

	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/api/candidates/job/%d", jobID), nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[[]web.Candidate]()
	s.server.ServeHTTP(recorder, req)
	assert.Len(t, recorder.MustScan().Data, 1)

	req, err = http.NewRequest(http.MethodPatch, fmt.Sprintf("/api/candidates/%d/status", all[1].ID),
		iox.NewJSONReader(web.UpdateStatusReq{Status: "interviewing"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detail := test.NewJSONResponseRecorder[web.Candidate]()
	s.server.ServeHTTP(detail, req)
	assert.Equal(t, "interviewing", detail.MustScan().Data.Status)

	req, err = http.NewRequest(http.MethodPatch, fmt.Sprintf("/api/candidates/%d/reject", all[1].ID), nil)
	require.NoError(t, err)
	detail = test.NewJSONResponseRecorder[web.Candidate]()
	s.server.ServeHTTP(detail, req)
	assert.Equal(t, "rejected", detail.MustScan().Data.Status)

	req, err = http.NewRequest(http.MethodGet, "/api/candidates/export", nil)
	require.NoError(t, err)
	raw := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(raw, req)
	require.Equal(t, http.StatusOK, raw.Code)
	f, err := excelize.OpenReader(raw.Body)
	require.NoError(t, err)
	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

// 并发的导入和入围请求落在同一个职位上，计数不能丢
func (s *HandlerTestSuite) TestConcurrentIntakeAndShortlist() {
	t := s.T()
	jobID := s.createJob()
	const workers = 8

	var eg errgroup.Group
	ids := make([]string, workers)
	for i := 0; i < workers; i++ {
		i := i
		eg.Go(func() error {
			res, err := s.tryUpload(web.UploadResumesReq{
				JobID:      jobID,
				Candidates: []web.CandidateInput{candidateInput(2 * i), candidateInput(2*i + 1)},
			})
			if err != nil {
				return err
			}
			if res.Code != 0 || len(res.Data.IDs) != 2 {
				return fmt.Errorf("第 %d 批导入失败: %d %s", i, res.Code, res.Msg)
			}
			ids[i] = res.Data.IDs[0]
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, int64(2*workers), s.job(jobID).CandidateCount)

	for _, id := range ids {
		id := id
		eg.Go(func() error {
			return s.tryShortlist(id, jobID)
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, int64(workers), s.job(jobID).ShortlistedCount)

	// 两批共用一个邮箱，只有一批能成功，失败的那批一条都不留
	dup := candidateInput(100)
	results := make([]test.Result[web.UploadResumesResp], 2)
	for i := 0; i < 2; i++ {
		i := i
		eg.Go(func() error {
			res, err := s.tryUpload(web.UploadResumesReq{
				JobID:      jobID,
				Candidates: []web.CandidateInput{candidateInput(200 + i), dup},
			})
			results[i] = res
			return err
		})
	}
	require.NoError(t, eg.Wait())
	var (
		succeeded int
		winner    int
	)
	for i, res := range results {
		if res.Code == 0 {
			succeeded++
			winner = i
			continue
		}
		assert.Equal(t, errs.EmailConflict.Code, res.Code)
	}
	require.Equal(t, 1, succeeded)
	var cnt int64
	require.NoError(t, s.db.Table("candidates").
		Where("email = ?", fmt.Sprintf("c%d@example.com", 200+1-winner)).Count(&cnt).Error)
	assert.Zero(t, cnt)
	require.NoError(t, s.db.Table("candidates").Where("job_id = ?", jobID).Count(&cnt).Error)
	assert.Equal(t, int64(2*workers+2), cnt)
	assert.Equal(t, cnt, s.job(jobID).CandidateCount)
	assert.Equal(t, int64(workers), s.job(jobID).ShortlistedCount)
}

// tryUpload 和 upload 一样，但是不调用 require，可以在 goroutine 里面用
func (s *HandlerTestSuite) tryUpload(req web.UploadResumesReq) (test.Result[web.UploadResumesResp], error) {
	httpReq, err := http.NewRequest(http.MethodPost, "/api/candidates/upload-resumes", iox.NewJSONReader(req))
	if err != nil {
		return test.Result[web.UploadResumesResp]{}, err
	}
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.UploadResumesResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder.Scan()
}

func (s *HandlerTestSuite) tryShortlist(id string, jobID int64) error {
	req, err := http.NewRequest(http.MethodPatch, "/api/candidates/"+id+"/shortlist",
		iox.NewJSONReader(web.ShortlistReq{JobID: jobID}))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ShortlistResp]()
	s.server.ServeHTTP(recorder, req)
	res, err := recorder.Scan()
	if err != nil {
		return err
	}
	if recorder.Code != http.StatusOK || res.Code != 0 {
		return fmt.Errorf("候选人 %s 入围失败: %d %s", id, res.Code, res.Msg)
	}
	return nil
}

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

	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/integration/startup"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/web"
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
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	ms     *startup.Modules
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	idGen, err := snowflake.NewGenerator(1)
	require.NoError(s.T(), err)
	ms, err := startup.InitModules(idGen)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	ms.Dashboard.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.ms = ms
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	// 顺带清掉快照缓存
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(s.T(), s.ms.Dashboard.Svc.Reset(ctx))
	for _, table := range []string{"dashboard_stats", "candidates", "job_openings"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) do(method, path string) test.Result[web.Stats] {
	req, err := http.NewRequest(method, path, nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Stats]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) snapshotCount() int64 {
	var cnt int64
	require.NoError(s.T(), s.db.Table("dashboard_stats").Count(&cnt).Error)
	return cnt
}

func (s *HandlerTestSuite) TestStatsWithoutData() {
	t := s.T()
	resp := s.do(http.MethodGet, "/api/dashboard/stats")
	require.Zero(t, resp.Code, resp.Msg)
	assert.Equal(t, web.Stats{LastUpdated: resp.Data.LastUpdated}, resp.Data)
	assert.NotEmpty(t, resp.Data.LastUpdated)
	assert.Equal(t, int64(1), s.snapshotCount())

	// 已经有快照了，不会再生成
	resp = s.do(http.MethodGet, "/api/dashboard/stats")
	require.Zero(t, resp.Code, resp.Msg)
	assert.Equal(t, int64(1), s.snapshotCount())
}

// TestHiringWorkflow 创建职位，录入候选人，入围，最后统计
func (s *HandlerTestSuite) TestHiringWorkflow() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	jobID, err := s.ms.Opening.Svc.Create(ctx, opening.Opening{
		Title:        "Data Scientist",
		Department:   "Data",
		Location:     "Remote",
		Type:         opening.TypeContract,
		Description:  "ML",
		Requirements: []string{"Python"},
	})
	require.NoError(t, err)
	_, err = s.ms.Opening.Svc.Create(ctx, opening.Opening{
		Title:        "UX Designer",
		Department:   "Design",
		Location:     "New York, NY",
		Type:         opening.TypeFullTime,
		Status:       opening.StatusClosed,
		Description:  "Design",
		Requirements: []string{"Figma"},
	})
	require.NoError(t, err)

	batch := make([]candidate.CandidateInput, 0, 3)
	for i := 1; i <= 3; i++ {
		batch = append(batch, candidate.CandidateInput{
			Name:   fmt.Sprintf("候选人 %d", i),
			Email:  fmt.Sprintf("c%d@example.com", i),
			Skills: []string{"Python"},
		})
	}
	res, err := s.ms.Candidate.IntakeSvc.Intake(ctx, jobID, batch)
	require.NoError(t, err)
	require.Len(t, res.IDs, 3)
	_, err = s.ms.Candidate.StatusSvc.Shortlist(ctx, res.IDs[0], jobID)
	require.NoError(t, err)

	o, err := s.ms.Opening.Svc.Detail(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.CandidateCount)
	assert.Equal(t, int64(1), o.ShortlistedCount)

	want := web.Stats{
		OpenPositions:         1,
		TotalCandidates:       3,
		ShortlistedCandidates: 1,
		NewCandidates:         2,
		HiringRate:            33.3,
	}
	first := s.do(http.MethodPost, "/api/dashboard/stats/update")
	require.Zero(t, first.Code, first.Msg)
	second := s.do(http.MethodPost, "/api/dashboard/stats/update")
	require.Zero(t, second.Code, second.Msg)
	for _, got := range []web.Stats{first.Data, second.Data} {
		want.LastUpdated = got.LastUpdated
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int64(2), s.snapshotCount())

	req, err := http.NewRequest(http.MethodGet, "/api/dashboard/stats/history?limit=5", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.Stats]()
	s.server.ServeHTTP(recorder, req)
	history := recorder.MustScan()
	require.Zero(t, history.Code, history.Msg)
	assert.Len(t, history.Data, 2)
}

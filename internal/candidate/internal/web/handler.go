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
package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/domain"
	"github.com/ecodeclub/hrhub/internal/candidate/internal/service"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc       service.Service
	intakeSvc service.IntakeService
	statusSvc service.StatusService
	counter   service.CounterService
	exportSvc service.ExportService
}

func NewHandler(svc service.Service,
	intakeSvc service.IntakeService,
	statusSvc service.StatusService,
	counter service.CounterService,
	exportSvc service.ExportService) *Handler {
	return &Handler{
		svc:       svc,
		intakeSvc: intakeSvc,
		statusSvc: statusSvc,
		counter:   counter,
		exportSvc: exportSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/candidates")
	g.GET("", ginx.W(h.List))
	g.GET("/export", ginx.W(h.Export))
	g.GET("/:id", ginx.W(h.Detail))
	g.GET("/job/:jobId", ginx.W(h.ListByJob))
	g.PATCH("/:id/shortlist", ginx.B[ShortlistReq](h.Shortlist))
	g.PATCH("/:id/reject", ginx.W(h.Reject))
	g.PATCH("/:id/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/upload-resumes", ginx.B[UploadResumesReq](h.UploadResumes))
	g.POST("/job/:jobId/reconcile", ginx.W(h.Reconcile))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidates(cs)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return invalidInputResult(err), err
	}
	c, err := h.svc.Detail(ctx, id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newCandidate(c)}, nil
}

func (h *Handler) ListByJob(ctx *ginx.Context) (ginx.Result, error) {
	jobID, err := pathID(ctx, "jobId")
	if err != nil {
		return invalidInputResult(err), err
	}
	cs, err := h.svc.ListByJob(ctx, jobID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidates(cs)}, nil
}

func (h *Handler) Shortlist(ctx *ginx.Context, req ShortlistReq) (ginx.Result, error) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return invalidInputResult(err), err
	}
	c, err := h.statusSvc.Shortlist(ctx, id, req.JobID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: ShortlistResp{Success: true, Candidate: newCandidate(c)}}, nil
}

func (h *Handler) Reject(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return invalidInputResult(err), err
	}
	c, err := h.statusSvc.Reject(ctx, id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newCandidate(c)}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return invalidInputResult(err), err
	}
	c, err := h.statusSvc.UpdateStatus(ctx, id, domain.Status(req.Status))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newCandidate(c)}, nil
}

func (h *Handler) UploadResumes(ctx *ginx.Context, req UploadResumesReq) (ginx.Result, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > service.MaxUploadCount {
		err := bizerr.Validation("简历数量 %d 不合法", req.Count)
		return invalidInputResult(err), err
	}
	var (
		resumes []domain.Resume
		inputs  []domain.CandidateInput
	)
	if len(req.Candidates) > 0 {
		inputs = slice.Map(req.Candidates, func(idx int, src CandidateInput) domain.CandidateInput {
			return src.toDomain()
		})
	} else {
		resumes = make([]domain.Resume, 0, count)
		for i := 0; i < count; i++ {
			resumes = append(resumes, domain.Resume{FileName: fmt.Sprintf("resume-%d.pdf", i+1)})
		}
	}
	res, err := h.intakeSvc.UploadResumes(ctx, req.JobID, resumes, inputs)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: UploadResumesResp{
		Uploaded:  len(res.IDs),
		Processed: len(res.IDs),
		IDs: slice.Map(res.IDs, func(idx int, src int64) string {
			return strconv.FormatInt(src, 10)
		}),
		JobLinked: res.JobLinked,
	}}, nil
}

func (h *Handler) Reconcile(ctx *ginx.Context) (ginx.Result, error) {
	jobID, err := pathID(ctx, "jobId")
	if err != nil {
		return invalidInputResult(err), err
	}
	cnt, err := h.counter.Reconcile(ctx, jobID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: ReconcileResp{
		JobID:            cnt.JobID,
		CandidateCount:   cnt.Total,
		ShortlistedCount: cnt.Shortlisted,
	}}, nil
}

func (h *Handler) Export(ctx *ginx.Context) (ginx.Result, error) {
	var jobID int64
	if raw := ctx.Context.Query("jobId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			err = bizerr.Validation("职位ID %q 不合法", raw)
			return invalidInputResult(err), err
		}
		jobID = id
	}
	var buf bytes.Buffer
	_, err := h.exportSvc.ExportXLSX(ctx, jobID, &buf)
	if err != nil {
		return errorResult(err), err
	}
	ctx.Context.Header("Content-Disposition", `attachment; filename="candidates.xlsx"`)
	ctx.Context.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	return ginx.Result{}, ginx.ErrNoResponse
}

func pathID(ctx *ginx.Context, key string) (int64, error) {
	raw := ctx.Context.Param(key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, bizerr.Validation("%s %q 不合法", key, raw)
	}
	return id, nil
}

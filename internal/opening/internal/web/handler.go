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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrhub/internal/opening/internal/domain"
	"github.com/ecodeclub/hrhub/internal/opening/internal/service"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/jobs")
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
	g.POST("", ginx.B[CreateReq](h.Create))
	g.PATCH("/:id/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	list, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(idx int, src domain.Opening) Job {
			return newJob(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := h.pathID(ctx)
	if err != nil {
		return invalidInputResult(err), err
	}
	o, err := h.svc.Detail(ctx, id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newJob(o)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, req.toDomain())
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: CreateResp{ID: id}}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	id, err := h.pathID(ctx)
	if err != nil {
		return invalidInputResult(err), err
	}
	err = h.svc.UpdateStatus(ctx, id, domain.Status(req.Status))
	if err != nil {
		return errorResult(err), err
	}
	o, err := h.svc.Detail(ctx, id)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newJob(o)}, nil
}

func (h *Handler) pathID(ctx *ginx.Context) (int64, error) {
	raw := ctx.Context.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, bizerr.Validation("职位ID %q 不合法", raw)
	}
	return id, nil
}

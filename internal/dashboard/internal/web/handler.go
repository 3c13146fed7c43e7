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
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hrhub/internal/dashboard/internal/service"
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
	g := server.Group("/api/dashboard")
	g.GET("/stats", ginx.W(h.Stats))
	g.POST("/stats/update", ginx.W(h.Update))
	g.GET("/stats/history", ginx.W(h.History))
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.svc.GetCurrentSnapshot(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newStats(s)}, nil
}

func (h *Handler) Update(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.svc.ComputeSnapshot(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newStats(s)}, nil
}

func (h *Handler) History(ctx *ginx.Context) (ginx.Result, error) {
	var limit int
	if raw := ctx.Context.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l <= 0 {
			err = bizerr.Validation("limit %q 不合法", raw)
			return invalidInputResult(err), err
		}
		limit = l
	}
	list, err := h.svc.History(ctx, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(list, func(idx int, src domain.Stats) Stats {
		return newStats(src)
	})}, nil
}

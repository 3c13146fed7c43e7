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
package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/hrhub/internal/candidate"
	"github.com/ecodeclub/hrhub/internal/dashboard"
	"github.com/ecodeclub/hrhub/internal/opening"
	"github.com/ecodeclub/hrhub/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(oHdl *opening.Handler,
	cHdl *candidate.Handler,
	dHdl *dashboard.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	origins := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if origin == o {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder("hrhub", nil).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	oHdl.PublicRoutes(res.Engine)
	cHdl.PublicRoutes(res.Engine)
	dHdl.PublicRoutes(res.Engine)
	return res
}

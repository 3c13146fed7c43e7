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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

// NewMetricsBuilder 指标注册到 reg 上，reg 为 nil 时使用 prometheus 默认的 Registerer
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"method", "path", "status_code"}
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	reg.MustRegister(duration, total)
	return &MetricsBuilder{
		duration: duration,
		total:    total,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由，统一归到一起，避免 label 爆炸
			path = "unmatched"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(lvs...).Inc()
	}
}

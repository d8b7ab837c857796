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
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按照路由模板统计，不会因为路径参数导致标签爆炸
type MetricsBuilder struct {
	Namespace  string
	Subsystem  string
	Registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Registerer: prometheus.DefaultRegisterer,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	factory := promauto.With(b.Registerer)
	labels := []string{"method", "pattern", "status"}
	duration := factory.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP 请求耗时",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP 请求数量",
	}, labels)
	active := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_active_requests",
		Help:      "正在处理的 HTTP 请求数量",
	})
	return func(ctx *gin.Context) {
		start := time.Now()
		active.Inc()
		defer func() {
			active.Dec()
			pattern := ctx.FullPath()
			if pattern == "" {
				pattern = "unknown"
			}
			status := strconv.Itoa(ctx.Writer.Status())
			duration.WithLabelValues(ctx.Request.Method, pattern, status).Observe(time.Since(start).Seconds())
			total.WithLabelValues(ctx.Request.Method, pattern, status).Inc()
		}()
		ctx.Next()
	}
}

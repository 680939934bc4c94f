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

type MetricsBuilder struct {
	Namespace  string
	Subsystem  string
	registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace:  namespace,
		Subsystem:  subsystem,
		registerer: prometheus.DefaultRegisterer,
	}
}

// Registerer 默认注册到 prometheus.DefaultRegisterer，测试里面可以换成独立的 Registry
func (b *MetricsBuilder) Registerer(r prometheus.Registerer) *MetricsBuilder {
	b.registerer = r
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	factory := promauto.With(b.registerer)
	labels := []string{"method", "path", "status_code"}
	duration := factory.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP 请求响应时间",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.95: 0.005,
			0.99: 0.001,
		},
	}, labels)
	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP 请求总数",
	}, labels)
	inFlight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_in_flight",
		Help:      "正在处理的 HTTP 请求数",
	})

	return func(ctx *gin.Context) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		ctx.Next()

		// 用路由模板作为 path，避免 /feedback/1、/feedback/2 被当成不同的标签
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		total.WithLabelValues(lvs...).Inc()
	}
}

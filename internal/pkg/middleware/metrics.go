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

// MetricsBuilder 记录每个路由的响应时间和请求数
type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return NewMetricsBuilderWithRegisterer(prometheus.DefaultRegisterer, namespace)
}

func NewMetricsBuilderWithRegisterer(reg prometheus.Registerer, namespace string) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, labels),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP 请求数",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 没有匹配到路由的时候 FullPath 为空，统一归到一个标签，避免标签爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}

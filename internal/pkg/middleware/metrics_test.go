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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	b := NewMetricsBuilderWithRegisterer(reg, "campus")
	server := gin.New()
	server.Use(b.Build())
	server.GET("/posts/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/posts/1", "/posts/2", "/nothing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(b.total.WithLabelValues(http.MethodGet, "/posts/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(b.total.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

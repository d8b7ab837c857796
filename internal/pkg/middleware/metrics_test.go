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
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	b := NewMetricsBuilder("algoknight", "web")
	b.Registerer = reg
	server := gin.New()
	server.Use(b.Build())
	server.POST("/smartsheet/list", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	for i := 0; i < 2; i++ {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/smartsheet/list", nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/not/found", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
	cnt, err := testutil.GatherAndCount(reg, "algoknight_web_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}

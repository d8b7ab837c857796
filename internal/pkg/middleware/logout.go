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

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// LogoutHook 登录态失效的时候调用，此时响应头还没有写出去
type LogoutHook interface {
	OnLogout(ctx *gin.Context)
}

type LogoutHookFunc func(ctx *gin.Context)

func (f LogoutHookFunc) OnLogout(ctx *gin.Context) {
	f(ctx)
}

// ClearTokenHook 清理响应里面的 token，前端看到之后丢弃本地的登录态
type ClearTokenHook struct {
	Headers []string
}

func NewClearTokenHook() *ClearTokenHook {
	return &ClearTokenHook{
		Headers: []string{"X-Access-Token", "X-Refresh-Token"},
	}
}

func (h *ClearTokenHook) OnLogout(ctx *gin.Context) {
	for _, key := range h.Headers {
		ctx.Writer.Header().Del(key)
	}
	ctx.Header("X-Session-Expired", "true")
}

// LogoutHookBuilder 在 401 写出之前依次调用注册的 hook
type LogoutHookBuilder struct {
	hooks  []LogoutHook
	logger *elog.Component
}

func NewLogoutHookBuilder(hooks ...LogoutHook) *LogoutHookBuilder {
	return &LogoutHookBuilder{
		hooks:  hooks,
		logger: elog.DefaultLogger,
	}
}

func (b *LogoutHookBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer = &logoutWriter{
			ResponseWriter: ctx.Writer,
			ctx:            ctx,
			builder:        b,
		}
		ctx.Next()
	}
}

type logoutWriter struct {
	gin.ResponseWriter
	ctx     *gin.Context
	builder *LogoutHookBuilder
	fired   bool
}

func (w *logoutWriter) WriteHeader(code int) {
	if code == http.StatusUnauthorized && !w.fired && !w.Written() {
		w.fired = true
		w.builder.logger.Debug("登录态失效", elog.String("path", w.ctx.Request.URL.Path))
		for _, hook := range w.builder.hooks {
			hook.OnLogout(w.ctx)
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

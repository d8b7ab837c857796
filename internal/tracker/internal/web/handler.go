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
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/tracker")
	g.POST("/dashboard", ginx.S(h.Dashboard))
	g.POST("/handles/save", ginx.BS[SaveHandlesReq](h.SaveHandles))
	g.POST("/upsolve", ginx.S(h.Upsolve))
}

func (h *Handler) Dashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Dashboard(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDashboard(d),
	}, nil
}

// SaveHandles 换绑之后下一轮拉取会从头开始
func (h *Handler) SaveHandles(ctx *ginx.Context, req SaveHandlesReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.SaveHandles(ctx, uid, req.toDomain(uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Upsolve(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.Upsolve(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUpsolveContests(cs),
	}, nil
}

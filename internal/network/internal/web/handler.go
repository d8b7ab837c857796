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
	"errors"

	"github.com/ecodeclub/algoknight/internal/network/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/network")
	g.POST("/toggle", ginx.BS[ToggleReq](h.Toggle))
	g.POST("/list", ginx.S(h.List))
	g.POST("/search", ginx.BS[SearchReq](h.Search))
}

func (h *Handler) Toggle(ctx *ginx.Context, req ToggleReq, sess session.Session) (ginx.Result, error) {
	connected, err := h.svc.Toggle(ctx, sess.Claims().Uid, req.Fid)
	switch {
	case errors.Is(err, service.ErrSelfConnection):
		return selfConnectionResult, nil
	case errors.Is(err, service.ErrInvalidFriend):
		return invalidFriendResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ToggleResp{Connected: connected},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.Connections(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newConnections(cs),
	}, nil
}

// Search 只返回还不是好友的用户
func (h *Handler) Search(ctx *ginx.Context, req SearchReq, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.Search(ctx, sess.Claims().Uid, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newConnections(cs),
	}, nil
}

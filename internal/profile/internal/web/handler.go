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
	"github.com/ecodeclub/campus/internal/pkg/webx"
	"github.com/ecodeclub/campus/internal/profile/internal/domain"
	"github.com/ecodeclub/campus/internal/profile/internal/errs"
	"github.com/ecodeclub/campus/internal/profile/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.GET("", ginx.S(h.Profile))
	g.POST("/save", ginx.BS[SaveReq](h.Save))
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Data: newProfile(p)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	claims := sess.Claims()
	err := h.svc.Save(ctx.Request.Context(), domain.Profile{
		ID:       claims.Uid,
		Email:    claims.Get("email").StringOrDefault(""),
		FullName: req.FullName,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK"}, nil
}

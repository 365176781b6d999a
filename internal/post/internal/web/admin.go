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
	"strconv"

	"github.com/ecodeclub/campus/internal/pkg/webx"
	"github.com/ecodeclub/campus/internal/post/internal/errs"
	"github.com/ecodeclub/campus/internal/post/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员维护岗位，权限在 service 里面每次重新校验
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/posts")
	g.POST("", ginx.BS[SavePostReq](h.Create))
	g.PUT("/:id", ginx.BS[SavePostReq](h.Update))
	g.DELETE("/:id", ginx.S(h.Delete))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SavePostReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), sess.Claims().Uid, req.toDomain(0))
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK", Data: strconv.FormatInt(id, 10)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SavePostReq, sess session.Session) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "id")
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	_, err = h.svc.Save(ctx.Request.Context(), sess.Claims().Uid, req.toDomain(id))
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK", Data: strconv.FormatInt(id, 10)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "id")
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	if err = h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, id); err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK"}, nil
}

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

	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/errs"
	"github.com/ecodeclub/campus/internal/application/internal/service"
	"github.com/ecodeclub/campus/internal/pkg/webx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// maxPageSize 只约束显式传入的 limit，不传 limit 时返回全部申请
const maxPageSize = 200

// AdminHandler 管理员审核申请
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.GET("", ginx.S(h.List))
	g.PATCH("/:id", ginx.S(h.SetStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var offset, limit int
	if ctx.Context.Query("limit") != "" {
		offset, limit = webx.Page(ctx, maxPageSize, maxPageSize)
	}
	apps, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{
		Data: ListApplicationsResp{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Summary) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

// SetStatus 请求体和路径参数都不在这里拒绝，
// 非管理员无论传什么都应该拿到 403
func (h *AdminHandler) SetStatus(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var req SetStatusReq
	_ = ctx.Context.ShouldBindJSON(&req)
	id, _ := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	err := h.svc.SetStatus(ctx.Request.Context(), sess.Claims().Uid, id, domain.Status(req.Status))
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK"}, nil
}

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
	"github.com/ecodeclub/campus/internal/post/internal/domain"
	"github.com/ecodeclub/campus/internal/post/internal/errs"
	"github.com/ecodeclub/campus/internal/post/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var _ ginx.Handler = &Handler{}

// Handler 学生浏览岗位，不需要登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/posts")
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	offset, limit := webx.Page(ctx, defaultPageSize, maxPageSize)
	typ := domain.Type(ctx.Context.Query("type"))
	posts, total, err := h.svc.List(ctx.Request.Context(), typ, offset, limit)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{
		Data: ListPostsResp{
			Total: total,
			Posts: slice.Map(posts, func(idx int, src domain.Post) Post {
				return newPost(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := webx.ParamInt64(ctx, "id")
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	p, err := h.svc.Detail(ctx.Request.Context(), id)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Data: newPost(p)}, nil
}

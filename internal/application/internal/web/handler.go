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
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/errs"
	"github.com/ecodeclub/campus/internal/application/internal/service"
	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/pkg/webx"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// 表单里面除了简历之外的字段都很小，预留 1MiB
const formOverhead = 1 << 20

// IdentityResolver 解析调用者身份，未登录返回匿名身份
type IdentityResolver interface {
	Resolve(ctx *ginx.Context) profile.Identity
}

var _ ginx.Handler = &Handler{}

// Handler 学生提交申请，登录不是必须的
type Handler struct {
	svc      service.Service
	resolver IdentityResolver
	maxBody  int64
}

func NewHandler(svc service.Service, resolver IdentityResolver, cfg service.Config) *Handler {
	maxSize := cfg.MaxResumeSize
	if maxSize <= 0 {
		maxSize = service.DefaultConfig().MaxResumeSize
	}
	return &Handler{svc: svc, resolver: resolver, maxBody: maxSize + formOverhead}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/apply", ginx.W(h.Submit))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/applications/mine", ginx.S(h.ListMine))
}

// Submit multipart 表单：post_id, resume, name, email, mobile。
// 这里只做解析，校验顺序交给 service
func (h *Handler) Submit(ctx *ginx.Context) (ginx.Result, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBody)
	if err := ctx.Request.ParseMultipartForm(h.maxBody); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return webx.Abort(ctx, bizerr.Validation("resume is too large"), errs.CodeOf)
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			return webx.Abort(ctx, bizerr.Validation("invalid form"), errs.CodeOf)
		}
	}
	postID, _ := strconv.ParseInt(strings.TrimSpace(ctx.Context.PostForm("post_id")), 10, 64)
	sub := domain.Submission{
		PostID:    postID,
		Submitter: h.submitter(ctx),
	}
	if fh, err := ctx.Context.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return webx.Abort(ctx, bizerr.Validation("failed to read resume"), errs.CodeOf)
		}
		defer f.Close()
		sub.Resume = domain.Resume{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		}
	}
	id, err := h.svc.Submit(ctx.Request.Context(), sub)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{Msg: "OK", Data: SubmitResp{ID: id, Success: true}}, nil
}

// ListMine 学生查看自己的申请以及审核状态
func (h *Handler) ListMine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	return ginx.Result{
		Data: ListApplicationsResp{
			Total: int64(len(apps)),
			Applications: slice.Map(apps, func(idx int, src domain.Summary) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

// submitter 有登录态就用登录态，否则使用表单里的联系方式
func (h *Handler) submitter(ctx *ginx.Context) domain.Submitter {
	if id := h.resolver.Resolve(ctx); !id.Anonymous() {
		return domain.AuthenticatedUser{Uid: id.Uid}
	}
	contact := domain.AnonymousContact{
		Name:   ctx.Context.PostForm("name"),
		Email:  ctx.Context.PostForm("email"),
		Mobile: ctx.Context.PostForm("mobile"),
	}
	if contact == (domain.AnonymousContact{}) {
		return nil
	}
	return contact
}

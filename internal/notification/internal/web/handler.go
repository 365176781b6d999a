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
	"net/http"

	"github.com/ecodeclub/campus/internal/notification/internal/errs"
	"github.com/ecodeclub/campus/internal/notification/internal/telegram"
	"github.com/ecodeclub/campus/internal/pkg/webx"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 管理员用来检查 telegram 配置
type AdminHandler struct {
	notifier   telegram.Notifier
	profileSvc profile.Service
	logger     *elog.Component
}

func NewAdminHandler(notifier telegram.Notifier, profileSvc profile.Service) *AdminHandler {
	return &AdminHandler{
		notifier:   notifier,
		profileSvc: profileSvc,
		logger:     elog.DefaultLogger.With(elog.FieldComponentName("notification.AdminHandler")),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/notification/ping", ginx.S(h.Ping))
}

func (h *AdminHandler) Ping(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.profileSvc.CheckRole(ctx.Request.Context(), sess.Claims().Uid, profile.RoleAdmin)
	if err != nil {
		return webx.Abort(ctx, err, errs.CodeOf)
	}
	if err = h.notifier.Ping(ctx.Request.Context()); err != nil {
		h.logger.Error("telegram 测试消息发送失败", elog.FieldErr(err))
		res := ginx.Result{Code: errs.ChannelError.Code, Msg: errs.ChannelError.Msg}
		ctx.AbortWithStatusJSON(http.StatusBadGateway, res)
		return res, ginx.ErrNoResponse
	}
	return ginx.Result{Msg: "OK"}, nil
}

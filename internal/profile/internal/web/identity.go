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
	"github.com/ecodeclub/campus/internal/profile/internal/domain"
	"github.com/ecodeclub/campus/internal/profile/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gotomicro/ego/core/elog"
)

// IdentityResolver 解析当前请求的调用者。
// 没有登录态不是错误，返回匿名身份，由业务自己决定要不要拒绝
type IdentityResolver struct {
	sp     session.Provider
	svc    service.Service
	logger *elog.Component
}

func NewIdentityResolver(sp session.Provider, svc service.Service) *IdentityResolver {
	return &IdentityResolver{
		sp:     sp,
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("profile.IdentityResolver")),
	}
}

func (r *IdentityResolver) Resolve(ctx *ginx.Context) domain.Identity {
	sess, err := r.sp.Get(ctx)
	if err != nil || sess == nil {
		return domain.Identity{}
	}
	claims := sess.Claims()
	id := domain.Identity{
		Uid:   claims.Uid,
		Email: claims.Get("email").StringOrDefault(""),
	}
	if id.Email != "" || id.Anonymous() {
		return id
	}
	p, err := r.svc.Profile(ctx.Request.Context(), id.Uid)
	if err != nil {
		r.logger.Warn("查询调用者邮箱失败", elog.FieldErr(err), elog.Int64("uid", id.Uid))
		return id
	}
	id.Email = p.Email
	return id
}

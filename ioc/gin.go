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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/campus/internal/application"
	"github.com/ecodeclub/campus/internal/notification"
	"github.com/ecodeclub/campus/internal/pkg/middleware"
	"github.com/ecodeclub/campus/internal/pkg/objstore"
	"github.com/ecodeclub/campus/internal/post"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	storeCfg objstore.Config,
	profileModule *profile.Module,
	postModule *post.Module,
	appModule *application.Module,
	notificationModule *notification.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	allowed := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range allowed {
				if origin == o {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder("campus").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 本地存储的简历直接由这里提供下载
	if storeCfg.Driver == "" || storeCfg.Driver == "local" {
		res.Static("/files", storeCfg.Local.Root)
	}

	postModule.Hdl.PublicRoutes(res.Engine)
	appModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	profileModule.Hdl.PrivateRoutes(res.Engine)
	postModule.AdminHdl.PrivateRoutes(res.Engine)
	appModule.Hdl.PrivateRoutes(res.Engine)
	appModule.AdminHdl.PrivateRoutes(res.Engine)
	notificationModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}

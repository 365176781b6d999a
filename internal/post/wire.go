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

//go:build wireinject

package post

import (
	"sync"

	"github.com/ecodeclub/campus/internal/pkg/snowflake"
	"github.com/ecodeclub/campus/internal/post/internal/repository"
	"github.com/ecodeclub/campus/internal/post/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/post/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/post/internal/service"
	"github.com/ecodeclub/campus/internal/post/internal/web"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	idGen snowflake.IDGenerator,
	profileModule *profile.Module) *Module {
	wire.Build(
		initDAO,
		cache.NewPostCache,
		repository.NewPostRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.PostDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPostDAO(db)
}

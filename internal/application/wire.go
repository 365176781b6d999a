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

package application

import (
	"sync"

	"github.com/ecodeclub/campus/internal/application/internal/event"
	"github.com/ecodeclub/campus/internal/application/internal/repository"
	"github.com/ecodeclub/campus/internal/application/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/application/internal/service"
	"github.com/ecodeclub/campus/internal/application/internal/web"
	"github.com/ecodeclub/campus/internal/pkg/objstore"
	"github.com/ecodeclub/campus/internal/pkg/snowflake"
	"github.com/ecodeclub/campus/internal/post"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	idGen snowflake.IDGenerator,
	store objstore.Store,
	postModule *post.Module,
	profileModule *profile.Module) *Module {
	wire.Build(
		initDAO,
		initConfig,
		initProducer,
		repository.NewApplicationRepository,
		service.NewBatchApplicantResolver,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*post.Module), "Svc"),
		wire.FieldsOf(new(*profile.Module), "Svc", "Resolver"),
		wire.Bind(new(web.IdentityResolver), new(*profile.IdentityResolver)),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.ApplicationDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}

func initConfig() service.Config {
	cfg := service.DefaultConfig()
	err := econf.UnmarshalKey("application", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initProducer(q mq.MQ) event.CreatedEventProducer {
	p, err := event.NewCreatedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

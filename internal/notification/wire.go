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

package notification

import (
	"github.com/ecodeclub/campus/internal/application"
	"github.com/ecodeclub/campus/internal/notification/internal/consumer"
	"github.com/ecodeclub/campus/internal/notification/internal/telegram"
	"github.com/ecodeclub/campus/internal/notification/internal/web"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ, appModule *application.Module, profileModule *profile.Module) (*Module, error) {
	wire.Build(
		initConfig,
		telegram.NewBotNotifier,
		initConsumer,
		web.NewAdminHandler,
		wire.Bind(new(telegram.Notifier), new(*telegram.BotNotifier)),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConfig() telegram.Config {
	var cfg telegram.Config
	err := econf.UnmarshalKey("telegram", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initConsumer(q mq.MQ, n telegram.Notifier, cfg telegram.Config) (*consumer.ApplicationEventConsumer, error) {
	return consumer.NewApplicationEventConsumer(q, n, cfg.Timeout)
}

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

package application

import (
	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/event"
	"github.com/ecodeclub/campus/internal/application/internal/service"
	"github.com/ecodeclub/campus/internal/application/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Service           = service.Service
	Config            = service.Config
	Handler           = web.Handler
	AdminHandler      = web.AdminHandler
	Application       = domain.Application
	Summary           = domain.Summary
	Status            = domain.Status
	Submitter         = domain.Submitter
	AnonymousContact  = domain.AnonymousContact
	AuthenticatedUser = domain.AuthenticatedUser
	CreatedEvent      = event.CreatedEvent
)

const (
	StatusPending  = domain.StatusPending
	StatusAccepted = domain.StatusAccepted
	StatusRejected = domain.StatusRejected

	CreatedEventName = event.CreatedEventName
)

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

package repository

import (
	"context"

	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/repository/dao"
	"github.com/ecodeclub/campus/internal/pkg/snowflake"
	"github.com/ecodeclub/ekit/slice"
)

var ErrApplicationNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, a domain.Application) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	TransitStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.Application, error)
	Count(ctx context.Context) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Application, error)
}

type applicationRepository struct {
	dao   dao.ApplicationDAO
	idGen snowflake.IDGenerator
}

func NewApplicationRepository(d dao.ApplicationDAO, idGen snowflake.IDGenerator) ApplicationRepository {
	return &applicationRepository{dao: d, idGen: idGen}
}

func (r *applicationRepository) Create(ctx context.Context, a domain.Application) (int64, error) {
	id, err := r.idGen.Generate(snowflake.BizApplication)
	if err != nil {
		return 0, err
	}
	a.ID = id
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(a), nil
}

func (r *applicationRepository) TransitStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	return r.dao.TransitStatus(ctx, id, from.String(), to.String())
}

func (r *applicationRepository) List(ctx context.Context, offset, limit int) ([]domain.Application, error) {
	as, err := r.dao.List(ctx, offset, limit)
	return slice.Map(as, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), err
}

func (r *applicationRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Application, error) {
	as, err := r.dao.ListByUid(ctx, uid)
	return slice.Map(as, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), err
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *applicationRepository) toDomain(a dao.Application) domain.Application {
	var sub domain.Submitter
	if a.Uid > 0 {
		sub = domain.AuthenticatedUser{Uid: a.Uid}
	} else {
		sub = domain.AnonymousContact{
			Name:   a.ContactName,
			Email:  a.ContactEmail,
			Mobile: a.ContactMobile,
		}
	}
	return domain.Application{
		ID:        a.Id,
		PostID:    a.PostId,
		Submitter: sub,
		ResumeURL: a.ResumeURL,
		Status:    domain.Status(a.Status),
		Ctime:     a.Ctime,
		Utime:     a.Utime,
	}
}

func (r *applicationRepository) toEntity(a domain.Application) dao.Application {
	res := dao.Application{
		Id:        a.ID,
		PostId:    a.PostID,
		ResumeURL: a.ResumeURL,
		Status:    a.Status.String(),
	}
	switch sub := a.Submitter.(type) {
	case domain.AuthenticatedUser:
		res.Uid = sub.Uid
	case domain.AnonymousContact:
		res.ContactName = sub.Name
		res.ContactEmail = sub.Email
		res.ContactMobile = sub.Mobile
	}
	return res
}

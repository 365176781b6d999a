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

	"github.com/ecodeclub/campus/internal/profile/internal/domain"
	"github.com/ecodeclub/campus/internal/profile/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrProfileNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./profile.go -package=repomocks -destination=mocks/profile.mock.go ProfileRepository
type ProfileRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Profile, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(d dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: d}
}

func (r *profileRepository) FindByID(ctx context.Context, id int64) (domain.Profile, error) {
	p, err := r.dao.FindByID(ctx, id)
	return r.toDomain(p), err
}

func (r *profileRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	ps, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(ps, func(idx int, src dao.Profile) domain.Profile {
		return r.toDomain(src)
	}), err
}

func (r *profileRepository) Save(ctx context.Context, p domain.Profile) error {
	return r.dao.Upsert(ctx, r.toEntity(p))
}

func (r *profileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		ID:       p.Id,
		Email:    p.Email,
		FullName: p.FullName,
		Mobile:   p.Mobile,
		Role:     domain.Role(p.Role),
		Ctime:    p.Ctime,
		Utime:    p.Utime,
	}
}

func (r *profileRepository) toEntity(p domain.Profile) dao.Profile {
	return dao.Profile{
		Id:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Mobile:   p.Mobile,
		Role:     p.Role.String(),
	}
}

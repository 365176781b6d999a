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

package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/profile/internal/domain"
	"github.com/ecodeclub/campus/internal/profile/internal/repository"
)

const (
	maxFullNameLen = 128
	maxMobileLen   = 32
)

//go:generate mockgen -source=./profile.go -package=profilemocks -destination=../../mocks/profile.mock.go Service
type Service interface {
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	// BatchProfiles 批量查询，找不到的用户不会出现在结果里
	BatchProfiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error)
	// Save 只允许用户修改自己的 full_name 和 mobile
	Save(ctx context.Context, p domain.Profile) error
	// CheckRole 每次都会重新查询角色，不信任任何缓存下来的标记位
	CheckRole(ctx context.Context, uid int64, role domain.Role) error
}

type service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{repo: repo}
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := s.repo.FindByID(ctx, uid)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domain.Profile{}, bizerr.NotFound("profile not found")
	}
	if err != nil {
		return domain.Profile{}, bizerr.Storage("查询用户资料失败", err)
	}
	return p, nil
}

func (s *service) BatchProfiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error) {
	seen := make(map[int64]struct{}, len(uids))
	ids := make([]int64, 0, len(uids))
	for _, uid := range uids {
		if _, ok := seen[uid]; ok || uid <= 0 {
			continue
		}
		seen[uid] = struct{}{}
		ids = append(ids, uid)
	}
	res := make(map[int64]domain.Profile, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	ps, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, bizerr.Storage("批量查询用户资料失败", err)
	}
	for _, p := range ps {
		res[p.ID] = p
	}
	return res, nil
}

func (s *service) Save(ctx context.Context, p domain.Profile) error {
	if p.ID <= 0 {
		return bizerr.Unauthorized("Unauthorized")
	}
	if utf8.RuneCountInString(p.FullName) > maxFullNameLen {
		return bizerr.Validation("full name too long")
	}
	if len(p.Mobile) > maxMobileLen {
		return bizerr.Validation("mobile too long")
	}
	// 角色只能由管理员在数据库里面调整
	p.Role = ""
	if err := s.repo.Save(ctx, p); err != nil {
		return bizerr.Storage("保存用户资料失败", err)
	}
	return nil
}

func (s *service) CheckRole(ctx context.Context, uid int64, role domain.Role) error {
	if uid <= 0 {
		return bizerr.Unauthorized("Unauthorized")
	}
	p, err := s.repo.FindByID(ctx, uid)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return bizerr.Forbidden("Forbidden")
	}
	if err != nil {
		return bizerr.Storage("查询用户角色失败", err)
	}
	if p.Role != role {
		return bizerr.Forbidden("Forbidden")
	}
	return nil
}

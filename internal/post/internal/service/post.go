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
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/post/internal/domain"
	"github.com/ecodeclub/campus/internal/post/internal/repository"
	"github.com/ecodeclub/campus/internal/profile"
	"golang.org/x/sync/errgroup"
)

const maxTitleLen = 256

//go:generate mockgen -source=./post.go -package=postmocks -destination=../../mocks/post.mock.go Service
type Service interface {
	// Save ID 为 0 时创建，否则整行覆盖
	Save(ctx context.Context, actor int64, p domain.Post) (int64, error)
	// Delete 硬删除，已有的申请保留，之后展示时岗位标题为空
	Delete(ctx context.Context, actor int64, id int64) error
	Detail(ctx context.Context, id int64) (domain.Post, error)
	// FreshDetail 绕过缓存，用于需要确认岗位此刻依旧存在的场景
	FreshDetail(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, typ domain.Type, offset, limit int) ([]domain.Post, int64, error)
	// GetByIDs 已经删除的岗位不会出现在结果里
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Post, error)
}

type service struct {
	repo       repository.PostRepository
	profileSvc profile.Service
}

func NewService(repo repository.PostRepository, profileSvc profile.Service) Service {
	return &service{repo: repo, profileSvc: profileSvc}
}

func (s *service) Save(ctx context.Context, actor int64, p domain.Post) (int64, error) {
	if err := s.profileSvc.CheckRole(ctx, actor, profile.RoleAdmin); err != nil {
		return 0, err
	}
	p, err := s.normalize(p)
	if err != nil {
		return 0, err
	}
	if p.ID == 0 {
		id, err := s.repo.Create(ctx, p)
		if err != nil {
			return 0, bizerr.Storage("创建岗位失败", err)
		}
		return id, nil
	}
	if _, err = s.FreshDetail(ctx, p.ID); err != nil {
		return 0, err
	}
	if err = s.repo.Update(ctx, p); err != nil {
		return 0, bizerr.Storage("更新岗位失败", err)
	}
	return p.ID, nil
}

func (s *service) normalize(p domain.Post) (domain.Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.ThumbnailURL = strings.TrimSpace(p.ThumbnailURL)
	switch {
	case p.Title == "":
		return p, bizerr.Validation("title is required")
	case utf8.RuneCountInString(p.Title) > maxTitleLen:
		return p, bizerr.Validation("title too long")
	case p.Description == "":
		return p, bizerr.Validation("description is required")
	case !p.Type.Valid():
		return p, bizerr.Validation("type must be one of research, club, event")
	}
	if !p.Type.AcceptThumbnail() {
		p.ThumbnailURL = ""
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, actor int64, id int64) error {
	if err := s.profileSvc.CheckRole(ctx, actor, profile.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.FreshDetail(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return bizerr.Storage("删除岗位失败", err)
	}
	return nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	return p, s.wrapFind(err)
}

func (s *service) FreshDetail(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.repo.FreshByID(ctx, id)
	return p, s.wrapFind(err)
}

func (s *service) wrapFind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrPostNotFound):
		return bizerr.NotFound("post not found")
	default:
		return bizerr.Storage("查询岗位失败", err)
	}
}

func (s *service) List(ctx context.Context, typ domain.Type, offset, limit int) ([]domain.Post, int64, error) {
	if typ != "" && !typ.Valid() {
		return nil, 0, bizerr.Validation("type must be one of research, club, event")
	}
	var (
		eg    errgroup.Group
		posts []domain.Post
		total int64
	)
	eg.Go(func() error {
		var err error
		posts, err = s.repo.List(ctx, typ, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, typ)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, bizerr.Storage("查询岗位列表失败", err)
	}
	return posts, total, nil
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Post, error) {
	res := make(map[int64]domain.Post, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	ps, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, bizerr.Storage("批量查询岗位失败", err)
	}
	for _, p := range ps {
		res[p.ID] = p
	}
	return res, nil
}

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
	"database/sql"
	"errors"

	"github.com/ecodeclub/campus/internal/pkg/snowflake"
	"github.com/ecodeclub/campus/internal/post/internal/domain"
	"github.com/ecodeclub/campus/internal/post/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/post/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrPostNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./post.go -package=repomocks -destination=mocks/post.mock.go PostRepository
type PostRepository interface {
	Create(ctx context.Context, p domain.Post) (int64, error)
	Update(ctx context.Context, p domain.Post) error
	Delete(ctx context.Context, id int64) error
	// FindByID 优先读缓存
	FindByID(ctx context.Context, id int64) (domain.Post, error)
	// FreshByID 直接读数据库
	FreshByID(ctx context.Context, id int64) (domain.Post, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Post, error)
	List(ctx context.Context, typ domain.Type, offset, limit int) ([]domain.Post, error)
	Count(ctx context.Context, typ domain.Type) (int64, error)
}

type postRepository struct {
	dao    dao.PostDAO
	cache  cache.PostCache
	idGen  snowflake.IDGenerator
	logger *elog.Component
}

func NewPostRepository(d dao.PostDAO, c cache.PostCache, idGen snowflake.IDGenerator) PostRepository {
	return &postRepository{
		dao:    d,
		cache:  c,
		idGen:  idGen,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("post.Repository")),
	}
}

func (r *postRepository) Create(ctx context.Context, p domain.Post) (int64, error) {
	id, err := r.idGen.Generate(snowflake.BizPost)
	if err != nil {
		return 0, err
	}
	p.ID = id
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *postRepository) Update(ctx context.Context, p domain.Post) error {
	if err := r.dao.Update(ctx, r.toEntity(p)); err != nil {
		return err
	}
	r.evict(ctx, p.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := r.cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, cache.ErrPostNotFound) {
		r.logger.Warn("读取岗位缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	p, err = r.FreshByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if er := r.cache.Set(ctx, p); er != nil {
		r.logger.Warn("回写岗位缓存失败", elog.FieldErr(er), elog.Int64("id", id))
	}
	return p, nil
}

func (r *postRepository) FreshByID(ctx context.Context, id int64) (domain.Post, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return r.toDomain(p), nil
}

func (r *postRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Post, error) {
	ps, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(ps, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	}), err
}

func (r *postRepository) List(ctx context.Context, typ domain.Type, offset, limit int) ([]domain.Post, error) {
	ps, err := r.dao.List(ctx, typ.String(), offset, limit)
	return slice.Map(ps, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	}), err
}

func (r *postRepository) Count(ctx context.Context, typ domain.Type) (int64, error) {
	return r.dao.Count(ctx, typ.String())
}

// evict 删除缓存失败只能等过期
func (r *postRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Error("删除岗位缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
}

func (r *postRepository) toDomain(p dao.Post) domain.Post {
	return domain.Post{
		ID:           p.Id,
		Title:        p.Title,
		Description:  p.Description,
		Type:         domain.Type(p.Type),
		ThumbnailURL: p.ThumbnailURL.String,
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}

func (r *postRepository) toEntity(p domain.Post) dao.Post {
	return dao.Post{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type.String(),
		ThumbnailURL: sql.NullString{
			String: p.ThumbnailURL,
			Valid:  p.ThumbnailURL != "",
		},
	}
}

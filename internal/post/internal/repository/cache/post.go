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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/campus/internal/post/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrPostNotFound = errors.New("缓存中没有岗位")

type PostCache interface {
	Get(ctx context.Context, id int64) (domain.Post, error)
	Set(ctx context.Context, p domain.Post) error
	Delete(ctx context.Context, id int64) error
}

type postCache struct {
	ec ecache.Cache
}

func NewPostCache(ec ecache.Cache) PostCache {
	return &postCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "post:",
		},
	}
}

func (c *postCache) Get(ctx context.Context, id int64) (domain.Post, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Post{}, ErrPostNotFound
	}
	if val.Err != nil {
		return domain.Post{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "缓存中的岗位格式错误")
	}
	var p domain.Post
	err = json.Unmarshal([]byte(str), &p)
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "反序列化岗位失败")
	}
	return p, nil
}

func (c *postCache) Set(ctx context.Context, p domain.Post) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化岗位失败")
	}
	return c.ec.Set(ctx, c.key(p.ID), string(data), expiration)
}

func (c *postCache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *postCache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}

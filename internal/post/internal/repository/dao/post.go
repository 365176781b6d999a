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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PostDAO interface {
	Create(ctx context.Context, p Post) (int64, error)
	// Update 整行覆盖 title, description, type, thumbnail_url
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Post, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Post, error)
	// List 和 Count 的 typ 为空时不过滤类型
	List(ctx context.Context, typ string, offset, limit int) ([]Post, error)
	Count(ctx context.Context, typ string) (int64, error)
}

type GORMPostDAO struct {
	db *egorm.Component
}

func NewGORMPostDAO(db *egorm.Component) PostDAO {
	return &GORMPostDAO{db: db}
}

func (d *GORMPostDAO) Create(ctx context.Context, p Post) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *GORMPostDAO) Update(ctx context.Context, p Post) error {
	return d.db.WithContext(ctx).Model(&Post{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"title":         p.Title,
			"description":   p.Description,
			"type":          p.Type,
			"thumbnail_url": p.ThumbnailURL,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (d *GORMPostDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Post{}).Error
}

func (d *GORMPostDAO) FindByID(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *GORMPostDAO) FindByIDs(ctx context.Context, ids []int64) ([]Post, error) {
	var res []Post
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMPostDAO) List(ctx context.Context, typ string, offset, limit int) ([]Post, error) {
	var res []Post
	err := d.typeFilter(ctx, typ).
		Order("ctime DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMPostDAO) Count(ctx context.Context, typ string) (int64, error) {
	var total int64
	err := d.typeFilter(ctx, typ).Count(&total).Error
	return total, err
}

func (d *GORMPostDAO) typeFilter(ctx context.Context, typ string) *gorm.DB {
	tx := d.db.WithContext(ctx).Model(&Post{})
	if typ != "" {
		tx = tx.Where("type = ?", typ)
	}
	return tx
}

type Post struct {
	// 使用 snowflake 生成，不自增
	Id           int64          `gorm:"primaryKey;autoIncrement:false"`
	Title        string         `gorm:"type:varchar(512);NOT NULL"`
	Description  string         `gorm:"type:TEXT;NOT NULL"`
	Type         string         `gorm:"type:ENUM('research','club','event');NOT NULL;index"`
	ThumbnailURL sql.NullString `gorm:"type:varchar(1024)"`
	Ctime        int64          `gorm:"index"`
	Utime        int64
}

func (Post) TableName() string {
	return "posts"
}

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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProfileDAO interface {
	FindByID(ctx context.Context, id int64) (Profile, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Profile, error)
	// Upsert 不存在就插入，存在只更新 full_name 和 mobile。
	// role 和 email 不会被这个方法修改
	Upsert(ctx context.Context, p Profile) error
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (d *GORMProfileDAO) FindByID(ctx context.Context, id int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *GORMProfileDAO) FindByIDs(ctx context.Context, ids []int64) ([]Profile, error) {
	var res []Profile
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMProfileDAO) Upsert(ctx context.Context, p Profile) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	if p.Role == "" {
		p.Role = "student"
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"full_name": p.FullName,
			"mobile":    p.Mobile,
			"utime":     now,
		}),
	}).Create(&p).Error
}

type Profile struct {
	// 和登录体系中的用户 ID 保持一致，不自增
	Id       int64  `gorm:"primaryKey;autoIncrement:false"`
	Email    string `gorm:"type:varchar(256);NOT NULL;default:'';index"`
	FullName string `gorm:"type:varchar(256);NOT NULL;default:''"`
	Mobile   string `gorm:"type:varchar(32);NOT NULL;default:''"`
	Role     string `gorm:"type:ENUM('student','admin');NOT NULL;default:'student'"`
	Ctime    int64
	Utime    int64
}

func (Profile) TableName() string {
	return "profiles"
}

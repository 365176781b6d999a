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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateID    = errors.New("申请 ID 冲突")
)

type ApplicationDAO interface {
	Create(ctx context.Context, a Application) (int64, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	// TransitStatus 只有当前状态为 from 时才会更新，返回是否更新成功
	TransitStatus(ctx context.Context, id int64, from, to string) (bool, error)
	// List 按照创建时间倒序，limit <= 0 时返回全部
	List(ctx context.Context, offset, limit int) ([]Application, error)
	Count(ctx context.Context) (int64, error)
	// ListByUid 某个登录用户自己的全部申请，按照创建时间倒序
	ListByUid(ctx context.Context, uid int64) ([]Application, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Create(ctx context.Context, a Application) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateID
		}
	}
	return a.Id, err
}

func (d *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var a Application
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (d *GORMApplicationDAO) TransitStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *GORMApplicationDAO) List(ctx context.Context, offset, limit int) ([]Application, error) {
	var res []Application
	tx := d.db.WithContext(ctx).Order("ctime DESC, id DESC")
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	err := tx.Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) ListByUid(ctx context.Context, uid int64) ([]Application, error) {
	var res []Application
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).Model(&Application{}).Count(&total).Error
	return total, err
}

// Application post_id 上没有外键，岗位删除之后申请依旧保留
type Application struct {
	Id     int64 `gorm:"primaryKey;autoIncrement:false"`
	PostId int64 `gorm:"NOT NULL;index"`
	// Uid 为 0 代表匿名申请，此时 Contact 系列字段有值
	Uid           int64  `gorm:"NOT NULL;default:0;index"`
	ContactName   string `gorm:"type:varchar(256);NOT NULL;default:''"`
	ContactEmail  string `gorm:"type:varchar(256);NOT NULL;default:''"`
	ContactMobile string `gorm:"type:varchar(32);NOT NULL;default:''"`
	ResumeURL     string `gorm:"type:varchar(1024);NOT NULL"`
	Status        string `gorm:"type:ENUM('pending','accepted','rejected');NOT NULL;default:'pending';index"`
	Ctime         int64  `gorm:"index"`
	Utime         int64
}

func (Application) TableName() string {
	return "applications"
}

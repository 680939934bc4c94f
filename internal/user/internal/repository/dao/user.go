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

	"github.com/ecodeclub/echoboard/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

var ErrUserDuplicate = errors.New("邮箱已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByName(ctx context.Context, name string) (User, error)
	// FindByNames 按名字精确查找，大小写敏感
	FindByNames(ctx context.Context, names []string) ([]User, error)
	// SearchByName 名字包含 keyword 的用户，大小写不敏感
	SearchByName(ctx context.Context, keyword string, limit int) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) FindByName(ctx context.Context, name string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "name = ?", name).Error
	return u, err
}

func (ud *GORMUserDAO) FindByNames(ctx context.Context, names []string) ([]User, error) {
	var us []User
	if len(names) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "name IN ?", names).Error
	return us, err
}

func (ud *GORMUserDAO) SearchByName(ctx context.Context, keyword string, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", database.ContainsPattern(keyword)).
		Order("name ASC").
		Limit(limit).
		Find(&us).Error
	return us, err
}

type User struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// utf8mb4_bin 保证 @ 提及按名字查找时大小写敏感
	Name  string `gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null;index"`
	Email string `gorm:"type:varchar(255);not null;unique"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./category.go -package=daomocks -destination=mocks/category.mock.go CategoryDAO
type CategoryDAO interface {
	ActiveList(ctx context.Context) ([]Category, error)
	FindById(ctx context.Context, id int64) (Category, error)
	FindByIds(ctx context.Context, ids []int64) ([]Category, error)
}

type GORMCategoryDAO struct {
	db *egorm.Component
}

func NewGORMCategoryDAO(db *egorm.Component) CategoryDAO {
	return &GORMCategoryDAO{db: db}
}

func (d *GORMCategoryDAO) ActiveList(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMCategoryDAO) FindById(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *GORMCategoryDAO) FindByIds(ctx context.Context, ids []int64) ([]Category, error) {
	var res []Category
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Find(&res, "id IN ?", ids).Error
	return res, err
}

type Category struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(512)"`
	Color       string `gorm:"type:varchar(7);not null"`
	Active      bool   `gorm:"not null;index"`
	Ctime       int64
	Utime       int64
}

func (Category) TableName() string {
	return "feedback_categories"
}

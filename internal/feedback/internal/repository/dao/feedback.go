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

	"github.com/ecodeclub/echoboard/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Feedback struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:varchar(32);not null;default:open;index"`
	Upvotes     int64  `gorm:"not null;default:0"`
	Downvotes   int64  `gorm:"not null;default:0"`
	Uid         int64  `gorm:"index"`
	CategoryID  int64  `gorm:"column:feedback_category_id;index"`
	Ctime       int64  `gorm:"index"`
	Utime       int64
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// ListFilter 零值字段不参与过滤
type ListFilter struct {
	CategoryID int64
	Status     string
	Search     string
}

type FeedbackDAO interface {
	Create(ctx context.Context, fb Feedback) (int64, error)
	// Update 更新可编辑的字段，包括 title description feedback_category_id status
	Update(ctx context.Context, fb Feedback) error
	FindByID(ctx context.Context, id int64) (Feedback, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Delete 记录不存在时返回 ErrRecordNotFound
	Delete(ctx context.Context, id int64) error
	// IncrUpvotes 原子加一，返回更新后的记录
	IncrUpvotes(ctx context.Context, id int64) (Feedback, error)
	IncrDownvotes(ctx context.Context, id int64) (Feedback, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]Feedback, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

type feedbackDAO struct {
	db *egorm.Component
}

func NewFeedbackDAO(db *egorm.Component) FeedbackDAO {
	return &feedbackDAO{
		db: db,
	}
}

func (f *feedbackDAO) Create(ctx context.Context, fb Feedback) (int64, error) {
	now := time.Now().UnixMilli()
	fb.Ctime = now
	fb.Utime = now
	err := f.db.WithContext(ctx).Create(&fb).Error
	return fb.ID, err
}

func (f *feedbackDAO) Update(ctx context.Context, fb Feedback) error {
	return f.db.WithContext(ctx).
		Model(&Feedback{}).
		Where("id = ?", fb.ID).Updates(map[string]any{
		"title":                fb.Title,
		"description":          fb.Description,
		"feedback_category_id": fb.CategoryID,
		"status":               fb.Status,
		"utime":                time.Now().UnixMilli(),
	}).Error
}

func (f *feedbackDAO) FindByID(ctx context.Context, id int64) (Feedback, error) {
	var fb Feedback
	err := f.db.WithContext(ctx).Where("id = ?", id).First(&fb).Error
	return fb, err
}

func (f *feedbackDAO) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	err := f.db.WithContext(ctx).Model(&Feedback{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (f *feedbackDAO) Delete(ctx context.Context, id int64) error {
	res := f.db.WithContext(ctx).Where("id = ?", id).Delete(&Feedback{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (f *feedbackDAO) IncrUpvotes(ctx context.Context, id int64) (Feedback, error) {
	return f.incr(ctx, id, "upvotes")
}

func (f *feedbackDAO) IncrDownvotes(ctx context.Context, id int64) (Feedback, error) {
	return f.incr(ctx, id, "downvotes")
}

// incr 计数在数据库里面加一，并发投票不会丢失更新
func (f *feedbackDAO) incr(ctx context.Context, id int64, column string) (Feedback, error) {
	res := f.db.WithContext(ctx).
		Model(&Feedback{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return Feedback{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Feedback{}, ErrRecordNotFound
	}
	return f.FindByID(ctx, id)
}

func (f *feedbackDAO) List(ctx context.Context, filter ListFilter, offset, limit int) ([]Feedback, error) {
	var res []Feedback
	err := f.filtered(ctx, filter).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (f *feedbackDAO) Count(ctx context.Context, filter ListFilter) (int64, error) {
	var cnt int64
	err := f.filtered(ctx, filter).Count(&cnt).Error
	return cnt, err
}

func (f *feedbackDAO) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	query := f.db.WithContext(ctx).Model(&Feedback{})
	if filter.CategoryID > 0 {
		query = query.Where("feedback_category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := database.ContainsPattern(filter.Search)
		query = query.Where("(LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", pattern, pattern)
	}
	return query
}

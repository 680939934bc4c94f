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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Comment 针对某个反馈的评论
type Comment struct {
	ID int64 `gorm:"primaryKey,autoIncrement;comment:'评论自增ID'"`

	Uid        int64 `gorm:"not null;index;comment:'评论者'"`
	FeedbackID int64 `gorm:"not null;index:idx_feedback_ctime,priority:1;comment:'所属反馈'"`

	// NULL 代表直接评论反馈
	ParentID sql.Null[int64] `gorm:"type:bigint;index:idx_parent_ctime,priority:1;comment:'父评论ID'"`
	// 删除时应用层从叶子往上删，级联只兜底并发插入的回复
	ParentComment *Comment `gorm:"ForeignKey:ParentID;AssociationForeignKey:ID;constraint:OnDelete:CASCADE"`

	Content     string `gorm:"type:text;not null;comment:'原始 markdown 内容'"`
	ContentHTML string `gorm:"type:text;comment:'渲染后的 HTML'"`
	// 被 @ 的用户 ID
	MentionedUsers sqlx.JsonColumn[[]int64] `gorm:"type:json"`

	Ctime int64 `gorm:"index:idx_feedback_ctime,priority:2;index:idx_parent_ctime,priority:2"`
	Utime int64
}

func (Comment) TableName() string {
	return "feedback_comments"
}

//go:generate mockgen -source=./comment.go -package=daomocks -destination=mocks/comment.mock.go CommentDAO
type CommentDAO interface {
	Create(ctx context.Context, c Comment) (int64, error)
	// UpdateContent 只更新内容相关的字段
	UpdateContent(ctx context.Context, c Comment) error
	FindByID(ctx context.Context, id int64) (Comment, error)
	// FindTopLevel 分页查找反馈下的直接评论，按评论时间升序
	FindTopLevel(ctx context.Context, feedbackID int64, offset, limit int) ([]Comment, error)
	CountTopLevel(ctx context.Context, feedbackID int64) (int64, error)
	// FindDescendants 查找这些评论的所有后裔评论，不包含它们自己
	FindDescendants(ctx context.Context, ids []int64) ([]Comment, error)
	// Delete 在一个事务里删除评论及其所有后裔评论，返回删除的条数
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (g *commentDAO) UpdateContent(ctx context.Context, c Comment) error {
	return g.db.WithContext(ctx).Model(&Comment{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"content":         c.Content,
			"content_html":    c.ContentHTML,
			"mentioned_users": c.MentionedUsers,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (g *commentDAO) FindTopLevel(ctx context.Context, feedbackID int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("feedback_id = ? AND parent_id IS NULL", feedbackID).
		Order("ctime ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountTopLevel(ctx context.Context, feedbackID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("feedback_id = ? AND parent_id IS NULL", feedbackID).
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindDescendants(ctx context.Context, ids []int64) ([]Comment, error) {
	levels, err := g.descendantLevels(g.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}
	var res []Comment
	for _, level := range levels {
		res = append(res, level...)
	}
	return res, nil
}

// descendantLevels 一层一层往下找，层数就是查询次数
func (g *commentDAO) descendantLevels(db *gorm.DB, ids []int64) ([][]Comment, error) {
	var res [][]Comment
	for len(ids) > 0 {
		var children []Comment
		err := db.Where("parent_id IN ?", ids).
			Order("ctime ASC, id ASC").
			Find(&children).Error
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		res = append(res, children)
		ids = commentIDs(children)
	}
	return res, nil
}

func (g *commentDAO) Delete(ctx context.Context, id int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cnt, err = g.deleteSubtrees(tx, []int64{id})
		return err
	})
	return cnt, err
}

func (g *commentDAO) DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roots []int64
		err := tx.Model(&Comment{}).
			Where("feedback_id = ? AND parent_id IS NULL", feedbackID).
			Pluck("id", &roots).Error
		if err != nil {
			return err
		}
		cnt, err = g.deleteSubtrees(tx, roots)
		return err
	})
	return cnt, err
}

// deleteSubtrees 从叶子那一层开始往上删，不会触发外键级联，
// RowsAffected 之和就是实际删除的条数
func (g *commentDAO) deleteSubtrees(tx *gorm.DB, roots []int64) (int64, error) {
	if len(roots) == 0 {
		return 0, nil
	}
	levels, err := g.descendantLevels(tx, roots)
	if err != nil {
		return 0, err
	}
	var cnt int64
	for i := len(levels) - 1; i >= 0; i-- {
		res := tx.Where("id IN ?", commentIDs(levels[i])).Delete(&Comment{})
		if res.Error != nil {
			return 0, res.Error
		}
		cnt += res.RowsAffected
	}
	res := tx.Where("id IN ?", roots).Delete(&Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return cnt + res.RowsAffected, nil
}

func commentIDs(cs []Comment) []int64 {
	return slice.Map(cs, func(_ int, src Comment) int64 {
		return src.ID
	})
}

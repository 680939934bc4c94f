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

	"github.com/ecodeclub/echoboard/internal/comment/internal/domain"
	"github.com/ecodeclub/echoboard/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"golang.org/x/sync/errgroup"
)

var ErrCommentNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./comment.go -package=repomocks -destination=mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	UpdateContent(ctx context.Context, c domain.Comment) error
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	// FindSubtree 返回评论本身以及它所有的后裔评论，没有组装成树
	FindSubtree(ctx context.Context, id int64) ([]domain.Comment, error)
	// FindPage 返回一页直接评论以及它们所有的后裔评论，没有组装成树，total 是直接评论的总数
	FindPage(ctx context.Context, feedbackID int64, offset, limit int) ([]domain.Comment, int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error)
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (r *commentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *commentRepository) UpdateContent(ctx context.Context, c domain.Comment) error {
	return r.dao.UpdateContent(ctx, r.toEntity(c))
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) FindSubtree(ctx context.Context, id int64) ([]domain.Comment, error) {
	root, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	descendants, err := r.dao.FindDescendants(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	res := make([]domain.Comment, 0, len(descendants)+1)
	res = append(res, r.toDomain(root))
	return append(res, r.toDomains(descendants)...), nil
}

func (r *commentRepository) FindPage(ctx context.Context, feedbackID int64, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg          errgroup.Group
		tops        []dao.Comment
		descendants []dao.Comment
		total       int64
	)
	eg.Go(func() error {
		var err error
		tops, err = r.dao.FindTopLevel(ctx, feedbackID, offset, limit)
		if err != nil || len(tops) == 0 {
			return err
		}
		ids := slice.Map(tops, func(_ int, src dao.Comment) int64 {
			return src.ID
		})
		descendants, err = r.dao.FindDescendants(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountTopLevel(ctx, feedbackID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	res := make([]domain.Comment, 0, len(tops)+len(descendants))
	res = append(res, r.toDomains(tops)...)
	return append(res, r.toDomains(descendants)...), total, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.dao.Delete(ctx, id)
}

func (r *commentRepository) DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error) {
	return r.dao.DeleteByFeedback(ctx, feedbackID)
}

func (r *commentRepository) toEntity(c domain.Comment) dao.Comment {
	return dao.Comment{
		ID:         c.ID,
		Uid:        c.User.ID,
		FeedbackID: c.FeedbackID,
		ParentID: sql.Null[int64]{
			V:     c.ParentID,
			Valid: c.ParentID != 0,
		},
		Content:     c.Content,
		ContentHTML: c.ContentHTML,
		MentionedUsers: sqlx.JsonColumn[[]int64]{
			Val:   c.MentionedUsers,
			Valid: c.MentionedUsers != nil,
		},
	}
}

func (r *commentRepository) toDomains(cs []dao.Comment) []domain.Comment {
	return slice.Map(cs, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
}

func (r *commentRepository) toDomain(c dao.Comment) domain.Comment {
	mentioned := c.MentionedUsers.Val
	if mentioned == nil {
		mentioned = []int64{}
	}
	return domain.Comment{
		ID: c.ID,
		User: domain.User{
			ID: c.Uid,
		},
		FeedbackID:     c.FeedbackID,
		ParentID:       c.ParentID.V,
		Content:        c.Content,
		ContentHTML:    c.ContentHTML,
		MentionedUsers: mentioned,
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}

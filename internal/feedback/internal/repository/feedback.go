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
	"time"

	"github.com/ecodeclub/echoboard/internal/feedback/internal/domain"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrFeedbackNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./feedback.go -package=repomocks -destination=mocks/feedback.mock.go FeedbackRepository
type FeedbackRepository interface {
	Create(ctx context.Context, fb domain.Feedback) (int64, error)
	Update(ctx context.Context, fb domain.Feedback) error
	FindByID(ctx context.Context, id int64) (domain.Feedback, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Upvote(ctx context.Context, id int64) (domain.Votes, error)
	Downvote(ctx context.Context, id int64) (domain.Votes, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Feedback, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
}

type feedbackRepository struct {
	dao dao.FeedbackDAO
}

func NewFeedbackRepository(d dao.FeedbackDAO) FeedbackRepository {
	return &feedbackRepository{
		dao: d,
	}
}

func (f *feedbackRepository) Create(ctx context.Context, fb domain.Feedback) (int64, error) {
	return f.dao.Create(ctx, f.toEntity(fb))
}

func (f *feedbackRepository) Update(ctx context.Context, fb domain.Feedback) error {
	return f.dao.Update(ctx, f.toEntity(fb))
}

func (f *feedbackRepository) FindByID(ctx context.Context, id int64) (domain.Feedback, error) {
	fb, err := f.dao.FindByID(ctx, id)
	return f.toDomain(fb), err
}

func (f *feedbackRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return f.dao.Exists(ctx, id)
}

func (f *feedbackRepository) Delete(ctx context.Context, id int64) error {
	return f.dao.Delete(ctx, id)
}

func (f *feedbackRepository) Upvote(ctx context.Context, id int64) (domain.Votes, error) {
	fb, err := f.dao.IncrUpvotes(ctx, id)
	return f.toDomain(fb).Votes(), err
}

func (f *feedbackRepository) Downvote(ctx context.Context, id int64) (domain.Votes, error) {
	fb, err := f.dao.IncrDownvotes(ctx, id)
	return f.toDomain(fb).Votes(), err
}

func (f *feedbackRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Feedback, error) {
	list, err := f.dao.List(ctx, f.toListFilter(filter), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(list, func(_ int, src dao.Feedback) domain.Feedback {
		return f.toDomain(src)
	}), nil
}

func (f *feedbackRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return f.dao.Count(ctx, f.toListFilter(filter))
}

func (f *feedbackRepository) toListFilter(filter domain.Filter) dao.ListFilter {
	return dao.ListFilter{
		CategoryID: filter.CategoryID,
		Status:     filter.Status.String(),
		Search:     filter.Search,
	}
}

func (f *feedbackRepository) toDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:          fb.ID,
		Title:       fb.Title,
		Description: fb.Description,
		Status:      domain.Status(fb.Status),
		Upvotes:     fb.Upvotes,
		Downvotes:   fb.Downvotes,
		User:        domain.User{ID: fb.Uid},
		Category:    domain.Category{ID: fb.CategoryID},
		Ctime:       time.UnixMilli(fb.Ctime),
		Utime:       time.UnixMilli(fb.Utime),
	}
}

func (f *feedbackRepository) toEntity(fb domain.Feedback) dao.Feedback {
	return dao.Feedback{
		ID:          fb.ID,
		Title:       fb.Title,
		Description: fb.Description,
		Status:      fb.Status.String(),
		Upvotes:     fb.Upvotes,
		Downvotes:   fb.Downvotes,
		Uid:         fb.User.ID,
		CategoryID:  fb.Category.ID,
	}
}

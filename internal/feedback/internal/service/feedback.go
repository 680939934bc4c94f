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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/echoboard/internal/category"
	"github.com/ecodeclub/echoboard/internal/comment"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/domain"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/repository"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/pkg/paging"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPerPage = 15
	maxTitleLen    = 255
)

// Detail 反馈详情，带上第一页评论
type Detail struct {
	Feedback domain.Feedback
	Comments paging.Page[comment.Comment]
}

//go:generate mockgen -source=./feedback.go -package=feedbackmocks -destination=../../mocks/feedback.mock.go FeedbackService
type FeedbackService interface {
	// Create 新建的反馈状态都是 open，票数都是 0
	Create(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)
	// Update 只有作者可以修改，patch 里面没有设置的字段保持不变
	Update(ctx context.Context, id, uid int64, patch domain.Patch) (domain.Feedback, error)
	// Delete 只有作者可以删除，反馈下面的评论一起删除
	Delete(ctx context.Context, id, uid int64) error
	// Upvote 不做去重，同一个人可以投多次
	Upvote(ctx context.Context, id int64) (domain.Votes, error)
	Downvote(ctx context.Context, id int64) (domain.Votes, error)
	// List 按创建时间倒序
	List(ctx context.Context, filter domain.Filter, page, perPage int) (paging.Page[domain.Feedback], error)
	Detail(ctx context.Context, id int64) (Detail, error)
}

type service struct {
	repo        repository.FeedbackRepository
	userSvc     user.UserService
	categorySvc category.Service
	commentSvc  comment.CommentService
	logger      *elog.Component
}

func NewService(repo repository.FeedbackRepository,
	userSvc user.UserService,
	categorySvc category.Service,
	commentSvc comment.CommentService) FeedbackService {
	return &service{
		repo:        repo,
		userSvc:     userSvc,
		categorySvc: categorySvc,
		commentSvc:  commentSvc,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	fb.Title = strings.TrimSpace(fb.Title)
	fb.Description = strings.TrimSpace(fb.Description)
	ve := bizerr.NewValidationError()
	checkTitle(ve, fb.Title)
	checkDescription(ve, fb.Description)
	if err := s.checkCategory(ctx, ve, fb.Category.ID); err != nil {
		return domain.Feedback{}, err
	}
	if err := ve.OrNil(); err != nil {
		return domain.Feedback{}, err
	}
	fb.Status = domain.StatusOpen
	fb.Upvotes, fb.Downvotes = 0, 0
	id, err := s.repo.Create(ctx, fb)
	if err != nil {
		return domain.Feedback{}, err
	}
	return s.findWithRelations(ctx, id)
}

func (s *service) Update(ctx context.Context, id, uid int64, patch domain.Patch) (domain.Feedback, error) {
	fb, err := s.findOwned(ctx, id, uid)
	if err != nil {
		return domain.Feedback{}, err
	}
	ve := bizerr.NewValidationError()
	if patch.Title != nil {
		fb.Title = strings.TrimSpace(*patch.Title)
		checkTitle(ve, fb.Title)
	}
	if patch.Description != nil {
		fb.Description = strings.TrimSpace(*patch.Description)
		checkDescription(ve, fb.Description)
	}
	if patch.CategoryID != nil {
		fb.Category.ID = *patch.CategoryID
		if err = s.checkCategory(ctx, ve, fb.Category.ID); err != nil {
			return domain.Feedback{}, err
		}
	}
	if patch.Status != nil {
		st, ok := domain.ParseStatus(*patch.Status)
		if !ok {
			ve.Add("status", "状态不合法")
		}
		fb.Status = st
	}
	if err = ve.OrNil(); err != nil {
		return domain.Feedback{}, err
	}
	if err = s.repo.Update(ctx, fb); err != nil {
		return domain.Feedback{}, err
	}
	return s.findWithRelations(ctx, id)
}

func (s *service) Delete(ctx context.Context, id, uid int64) error {
	if _, err := s.findOwned(ctx, id, uid); err != nil {
		return err
	}
	// 先删评论，失败了反馈还在，可以重试
	cnt, err := s.commentSvc.DeleteByFeedback(ctx, id)
	if err != nil {
		return fmt.Errorf("删除反馈的评论失败 feedback_id=%d: %w", id, err)
	}
	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return fmt.Errorf("%w: feedback_id=%d", bizerr.ErrNotFound, id)
	}
	if err != nil {
		return err
	}
	s.logger.Info("删除反馈",
		elog.Int64("feedbackID", id),
		elog.Int64("uid", uid),
		elog.Int64("comments", cnt))
	return nil
}

func (s *service) Upvote(ctx context.Context, id int64) (domain.Votes, error) {
	return s.vote(ctx, id, s.repo.Upvote)
}

func (s *service) Downvote(ctx context.Context, id int64) (domain.Votes, error) {
	return s.vote(ctx, id, s.repo.Downvote)
}

func (s *service) vote(ctx context.Context, id int64,
	incr func(ctx context.Context, id int64) (domain.Votes, error)) (domain.Votes, error) {
	votes, err := incr(ctx, id)
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return domain.Votes{}, fmt.Errorf("%w: feedback_id=%d", bizerr.ErrNotFound, id)
	}
	return votes, err
}

func (s *service) List(ctx context.Context, filter domain.Filter, page, perPage int) (paging.Page[domain.Feedback], error) {
	if filter.Status != "" {
		st, ok := domain.ParseStatus(filter.Status.String())
		if !ok {
			return paging.Page[domain.Feedback]{}, bizerr.FieldError("status", "状态不合法")
		}
		filter.Status = st
	}
	filter.Search = strings.TrimSpace(filter.Search)
	page, perPage = paging.Normalize(page, perPage, DefaultPerPage)

	var (
		eg    errgroup.Group
		list  []domain.Feedback
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, filter, paging.Offset(page, perPage), perPage)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return paging.Page[domain.Feedback]{}, err
	}
	if err := s.setRelations(ctx, list); err != nil {
		return paging.Page[domain.Feedback]{}, err
	}
	return paging.NewPage(list, page, perPage, total), nil
}

func (s *service) Detail(ctx context.Context, id int64) (Detail, error) {
	fb, err := s.find(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	var (
		eg       errgroup.Group
		comments paging.Page[comment.Comment]
		list     = []domain.Feedback{fb}
	)
	eg.Go(func() error {
		return s.setRelations(ctx, list)
	})
	eg.Go(func() error {
		var err error
		comments, err = s.commentSvc.List(ctx, id, 1, 0)
		return err
	})
	if err = eg.Wait(); err != nil {
		return Detail{}, err
	}
	return Detail{Feedback: list[0], Comments: comments}, nil
}

func (s *service) find(ctx context.Context, id int64) (domain.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return domain.Feedback{}, fmt.Errorf("%w: feedback_id=%d", bizerr.ErrNotFound, id)
	}
	return fb, err
}

func (s *service) findOwned(ctx context.Context, id, uid int64) (domain.Feedback, error) {
	fb, err := s.find(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}
	if fb.User.ID != uid {
		return domain.Feedback{}, fmt.Errorf("%w: feedback_id=%d, uid=%d", bizerr.ErrPermissionDenied, id, uid)
	}
	return fb, nil
}

func (s *service) findWithRelations(ctx context.Context, id int64) (domain.Feedback, error) {
	fb, err := s.find(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}
	list := []domain.Feedback{fb}
	err = s.setRelations(ctx, list)
	return list[0], err
}

// setRelations 填充作者和分类，找不到的保持只有 ID
func (s *service) setRelations(ctx context.Context, list []domain.Feedback) error {
	if len(list) == 0 {
		return nil
	}
	var (
		eg         errgroup.Group
		users      map[int64]user.User
		categories map[int64]category.Category
	)
	eg.Go(func() error {
		res, err := s.userSvc.BatchProfile(ctx, slice.Map(list, func(_ int, src domain.Feedback) int64 {
			return src.User.ID
		}))
		users = slice.ToMap(res, func(u user.User) int64 {
			return u.Id
		})
		return err
	})
	eg.Go(func() error {
		var err error
		categories, err = s.categorySvc.FindByIds(ctx, slice.Map(list, func(_ int, src domain.Feedback) int64 {
			return src.Category.ID
		}))
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	for i := range list {
		if u, ok := users[list[i].User.ID]; ok {
			list[i].User = domain.User{ID: u.Id, Name: u.Name, Email: u.Email}
		}
		if c, ok := categories[list[i].Category.ID]; ok {
			list[i].Category = domain.Category{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				Color:       c.Color,
			}
		}
	}
	return nil
}

// checkCategory 只有启用的分类可以使用
func (s *service) checkCategory(ctx context.Context, ve *bizerr.ValidationError, id int64) error {
	if id <= 0 {
		ve.Add("feedback_category_id", "不能为空")
		return nil
	}
	c, err := s.categorySvc.Detail(ctx, id)
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		ve.Add("feedback_category_id", "分类不存在")
	case err != nil:
		return err
	case !c.Active:
		ve.Add("feedback_category_id", "分类已停用")
	}
	return nil
}

func checkTitle(ve *bizerr.ValidationError, title string) {
	if title == "" {
		ve.Add("title", "不能为空")
		return
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		ve.Add("title", fmt.Sprintf("长度不能超过 %d", maxTitleLen))
	}
}

func checkDescription(ve *bizerr.ValidationError, desc string) {
	if desc == "" {
		ve.Add("description", "不能为空")
	}
}

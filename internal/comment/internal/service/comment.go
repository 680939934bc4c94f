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

	"github.com/ecodeclub/echoboard/internal/comment/internal/domain"
	"github.com/ecodeclub/echoboard/internal/comment/internal/event"
	"github.com/ecodeclub/echoboard/internal/comment/internal/repository"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/pkg/markdown"
	"github.com/ecodeclub/echoboard/internal/pkg/paging"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

const (
	DefaultPerPage       = 20
	minMentionQueryLen   = 2
	maxMentionCandidates = 10
	excerptLen           = 100
)

//go:generate mockgen -source=./comment.go -package=commentmocks -destination=../../mocks/comment.mock.go CommentService FeedbackChecker
type CommentService interface {
	// Create 创建评论，返回带作者信息的评论
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	// Update 只有作者可以修改，返回评论以及它的回复
	Update(ctx context.Context, id int64, content string, uid int64) (domain.Comment, error)
	// Delete 删除评论以及它所有的回复，返回删除的条数
	Delete(ctx context.Context, id, uid int64) (int64, error)
	// List 分页查询反馈的直接评论，每条直接评论带上完整的回复树
	List(ctx context.Context, feedbackID int64, page, perPage int) (paging.Page[domain.Comment], error)
	// Detail 评论以及它的回复树
	Detail(ctx context.Context, id int64) (domain.Comment, error)
	// DeleteByFeedback 删除反馈下面所有的评论
	DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error)
	// SearchMentionCandidates @ 的时候提示的候选用户
	SearchMentionCandidates(ctx context.Context, q string) ([]domain.User, error)
}

// FeedbackChecker 确认反馈是否存在，由 feedback 模块提供
type FeedbackChecker interface {
	Exists(ctx context.Context, feedbackID int64) (bool, error)
}

type commentService struct {
	userSvc  user.UserService
	repo     repository.CommentRepository
	checker  FeedbackChecker
	mentions *MentionExtractor
	renderer markdown.Renderer
	producer event.MentionEventProducer
	logger   *elog.Component
}

func NewCommentService(userSvc user.UserService,
	repo repository.CommentRepository,
	checker FeedbackChecker,
	renderer markdown.Renderer,
	producer event.MentionEventProducer) CommentService {
	return &commentService{
		userSvc:  userSvc,
		repo:     repo,
		checker:  checker,
		mentions: NewMentionExtractor(userSvc),
		renderer: renderer,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if err := validateContent(c.Content); err != nil {
		return domain.Comment{}, err
	}
	if err := s.checkFeedback(ctx, c.FeedbackID); err != nil {
		return domain.Comment{}, err
	}
	if !c.IsTopLevel() {
		parent, err := s.repo.FindByID(ctx, c.ParentID)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domain.Comment{}, fmt.Errorf("%w: parent_id=%d", bizerr.ErrNotFound, c.ParentID)
		}
		if err != nil {
			return domain.Comment{}, err
		}
		if parent.FeedbackID != c.FeedbackID {
			return domain.Comment{}, bizerr.FieldError("parent_id", "父评论不属于该反馈")
		}
	}
	var err error
	c.MentionedUsers, err = s.mentions.Extract(ctx, c.Content)
	if err != nil {
		return domain.Comment{}, err
	}
	c.ContentHTML = s.renderer.Render(c.Content)
	c.ID, err = s.repo.Create(ctx, c)
	if err != nil {
		return domain.Comment{}, err
	}
	s.notifyMentioned(ctx, c, c.MentionedUsers)
	return s.Detail(ctx, c.ID)
}

func (s *commentService) Update(ctx context.Context, id int64, content string, uid int64) (domain.Comment, error) {
	c, err := s.findOwned(ctx, id, uid)
	if err != nil {
		return domain.Comment{}, err
	}
	if err = validateContent(content); err != nil {
		return domain.Comment{}, err
	}
	before := c.MentionedUsers
	c.Content = content
	c.MentionedUsers, err = s.mentions.Extract(ctx, content)
	if err != nil {
		return domain.Comment{}, err
	}
	c.ContentHTML = s.renderer.Render(content)
	if err = s.repo.UpdateContent(ctx, c); err != nil {
		return domain.Comment{}, err
	}
	// 只提醒这次修改新 @ 到的人
	s.notifyMentioned(ctx, c, slice.DiffSet(c.MentionedUsers, before))
	return s.Detail(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id, uid int64) (int64, error) {
	if _, err := s.findOwned(ctx, id, uid); err != nil {
		return 0, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *commentService) List(ctx context.Context, feedbackID int64, page, perPage int) (paging.Page[domain.Comment], error) {
	if err := s.checkFeedback(ctx, feedbackID); err != nil {
		return paging.Page[domain.Comment]{}, err
	}
	page, perPage = paging.Normalize(page, perPage, DefaultPerPage)
	comments, total, err := s.repo.FindPage(ctx, feedbackID, paging.Offset(page, perPage), perPage)
	if err != nil {
		return paging.Page[domain.Comment]{}, err
	}
	if err = s.setUserInfo(ctx, comments); err != nil {
		return paging.Page[domain.Comment]{}, err
	}
	return paging.NewPage(domain.BuildForest(comments), page, perPage, total), nil
}

func (s *commentService) Detail(ctx context.Context, id int64) (domain.Comment, error) {
	comments, err := s.repo.FindSubtree(ctx, id)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, fmt.Errorf("%w: comment_id=%d", bizerr.ErrNotFound, id)
	}
	if err != nil {
		return domain.Comment{}, err
	}
	if err = s.setUserInfo(ctx, comments); err != nil {
		return domain.Comment{}, err
	}
	// 第一条是评论本身，它的父评论不在结果里，所以组装出来只有一棵树
	return domain.BuildForest(comments)[0], nil
}

func (s *commentService) DeleteByFeedback(ctx context.Context, feedbackID int64) (int64, error) {
	return s.repo.DeleteByFeedback(ctx, feedbackID)
}

func (s *commentService) SearchMentionCandidates(ctx context.Context, q string) ([]domain.User, error) {
	q = strings.TrimSpace(q)
	if len(q) < minMentionQueryLen {
		return []domain.User{}, nil
	}
	users, err := s.userSvc.Search(ctx, q, maxMentionCandidates)
	if err != nil {
		return nil, err
	}
	return slice.Map(users, func(_ int, src user.User) domain.User {
		return domain.User{
			ID:    src.Id,
			Name:  src.Name,
			Email: src.Email,
		}
	}), nil
}

func (s *commentService) findOwned(ctx context.Context, id, uid int64) (domain.Comment, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, fmt.Errorf("%w: comment_id=%d", bizerr.ErrNotFound, id)
	}
	if err != nil {
		return domain.Comment{}, err
	}
	if c.User.ID != uid {
		return domain.Comment{}, fmt.Errorf("%w: comment_id=%d, uid=%d", bizerr.ErrPermissionDenied, id, uid)
	}
	return c, nil
}

func (s *commentService) checkFeedback(ctx context.Context, feedbackID int64) error {
	ok, err := s.checker.Exists(ctx, feedbackID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: feedback_id=%d", bizerr.ErrNotFound, feedbackID)
	}
	return nil
}

// notifyMentioned 发送失败只记录日志，不影响评论本身
func (s *commentService) notifyMentioned(ctx context.Context, c domain.Comment, uids []int64) {
	others := make([]int64, 0, len(uids))
	for _, uid := range uids {
		if uid != c.User.ID {
			others = append(others, uid)
		}
	}
	if len(others) == 0 {
		return
	}
	evt := event.MentionEvent{
		CommentID:  c.ID,
		FeedbackID: c.FeedbackID,
		AuthorID:   c.User.ID,
		Uids:       others,
		Excerpt:    markdown.Excerpt(c.ContentHTML, excerptLen),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送评论提及消息失败",
			elog.FieldErr(err),
			elog.Int64("commentID", c.ID),
			elog.Any("uids", others))
	}
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	uids := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.User.ID]; ok {
			continue
		}
		seen[c.User.ID] = struct{}{}
		uids = append(uids, c.User.ID)
	}
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	users := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		users[p.Id] = domain.User{
			ID:    p.Id,
			Name:  p.Name,
			Email: p.Email,
		}
	}
	for i := range comments {
		if u, ok := users[comments[i].User.ID]; ok {
			comments[i].User = u
		}
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return bizerr.FieldError("content", "不能为空")
	}
	return nil
}

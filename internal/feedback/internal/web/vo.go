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

package web

import (
	"github.com/ecodeclub/echoboard/internal/comment"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/domain"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/service"
	"github.com/ecodeclub/echoboard/internal/pkg/paging"
	"github.com/ecodeclub/ekit/slice"
)

type CreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	CategoryID  int64  `json:"feedback_category_id" validate:"required,gt=0"`
}

// UpdateRequest 没有传的字段不修改
type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"feedback_category_id" validate:"omitempty,gt=0"`
	Status      *string `json:"status"`
}

func (r UpdateRequest) toPatch() domain.Patch {
	return domain.Patch{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Status:      r.Status,
	}
}

type ListRequest struct {
	CategoryID int64  `form:"category_id"`
	Status     string `form:"status"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Feedback struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Upvotes     int64    `json:"upvotes"`
	Downvotes   int64    `json:"downvotes"`
	NetScore    int64    `json:"net_score"`
	UserID      int64    `json:"user_id"`
	CategoryID  int64    `json:"feedback_category_id"`
	User        User     `json:"user"`
	Category    Category `json:"category"`
	Ctime       int64    `json:"ctime"`
	Utime       int64    `json:"utime"`
}

type FeedbackDetail struct {
	Feedback
	Comments paging.Page[Comment] `json:"comments"`
}

type Comment struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	ContentHTML    string    `json:"content_html"`
	UserID         int64     `json:"user_id"`
	FeedbackID     int64     `json:"feedback_id"`
	ParentID       int64     `json:"parent_id,omitempty"`
	MentionedUsers []int64   `json:"mentioned_users"`
	User           User      `json:"user"`
	Replies        []Comment `json:"replies"`
	Ctime          int64     `json:"ctime"`
	Utime          int64     `json:"utime"`
}

type Votes struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	NetScore  int64 `json:"net_score"`
}

func newFeedback(fb domain.Feedback) Feedback {
	return Feedback{
		ID:          fb.ID,
		Title:       fb.Title,
		Description: fb.Description,
		Status:      fb.Status.String(),
		Upvotes:     fb.Upvotes,
		Downvotes:   fb.Downvotes,
		NetScore:    fb.NetScore(),
		UserID:      fb.User.ID,
		CategoryID:  fb.Category.ID,
		User: User{
			ID:    fb.User.ID,
			Name:  fb.User.Name,
			Email: fb.User.Email,
		},
		Category: Category{
			ID:          fb.Category.ID,
			Name:        fb.Category.Name,
			Description: fb.Category.Description,
			Color:       fb.Category.Color,
		},
		Ctime: fb.Ctime.UnixMilli(),
		Utime: fb.Utime.UnixMilli(),
	}
}

func newFeedbackDetail(d service.Detail) FeedbackDetail {
	return FeedbackDetail{
		Feedback: newFeedback(d.Feedback),
		Comments: paging.Map(d.Comments, newComment),
	}
}

func newComment(c comment.Comment) Comment {
	return Comment{
		ID:             c.ID,
		Content:        c.Content,
		ContentHTML:    c.ContentHTML,
		UserID:         c.User.ID,
		FeedbackID:     c.FeedbackID,
		ParentID:       c.ParentID,
		MentionedUsers: c.MentionedUsers,
		User: User{
			ID:    c.User.ID,
			Name:  c.User.Name,
			Email: c.User.Email,
		},
		Replies: slice.Map(c.Replies, func(_ int, src comment.Comment) Comment {
			return newComment(src)
		}),
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}

func newVotes(v domain.Votes) Votes {
	return Votes{
		Upvotes:   v.Upvotes,
		Downvotes: v.Downvotes,
		NetScore:  v.NetScore(),
	}
}

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
	"github.com/ecodeclub/echoboard/internal/comment/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type CreateRequest struct {
	Content    string `json:"content" validate:"required"`
	FeedbackID int64  `json:"feedback_id" validate:"required,gt=0"`
	ParentID   int64  `json:"parent_id"`
}

type UpdateRequest struct {
	Content string `json:"content" validate:"required"`
}

type ListRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

type SearchUserRequest struct {
	Q string `form:"q"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
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

type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

func newUser(u domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func newComment(c domain.Comment) Comment {
	return Comment{
		ID:             c.ID,
		Content:        c.Content,
		ContentHTML:    c.ContentHTML,
		UserID:         c.User.ID,
		FeedbackID:     c.FeedbackID,
		ParentID:       c.ParentID,
		MentionedUsers: c.MentionedUsers,
		User:           newUser(c.User),
		Replies:        newComments(c.Replies),
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}

func newComments(cs []domain.Comment) []Comment {
	return slice.Map(cs, func(_ int, src domain.Comment) Comment {
		return newComment(src)
	})
}

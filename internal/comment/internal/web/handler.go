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
	"strconv"

	"github.com/ecodeclub/echoboard/internal/comment/internal/domain"
	"github.com/ecodeclub/echoboard/internal/comment/internal/service"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/pkg/paging"
	"github.com/ecodeclub/echoboard/internal/pkg/validation"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 直接评论按评论时间升序，每条带完整的回复树
	server.GET("/feedback/:id/comments", ginx.W(h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comments")
	group.POST("", ginx.BS[CreateRequest](h.Create))
	group.GET("/:id", ginx.S(h.Detail))
	group.PUT("/:id", ginx.BS[UpdateRequest](h.Update))
	group.DELETE("/:id", ginx.S(h.Delete))
	// @ 的时候提示候选用户
	server.GET("/users/search", ginx.S(h.SearchUsers))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	if err := validation.Struct(req); err != nil {
		return errorResult(ctx, err)
	}
	c, err := h.svc.Create(ctx.Request.Context(), domain.Comment{
		User:       domain.User{ID: sess.Claims().Uid},
		FeedbackID: req.FeedbackID,
		ParentID:   req.ParentID,
		Content:    req.Content,
	})
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	c, err := h.svc.Detail(ctx.Request.Context(), id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateRequest, sess session.Session) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	if err = validation.Struct(req); err != nil {
		return errorResult(ctx, err)
	}
	c, err := h.svc.Update(ctx.Request.Context(), id, req.Content, sess.Claims().Uid)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	cnt, err := h.svc.Delete(ctx.Request.Context(), id, sess.Claims().Uid)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Msg:  "OK",
		Data: DeleteResult{Deleted: cnt},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	feedbackID, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	var req ListRequest
	if err = ctx.Context.ShouldBindQuery(&req); err != nil {
		return errorResult(ctx, bizerr.FieldError("page", "格式不正确"))
	}
	page, err := h.svc.List(ctx.Request.Context(), feedbackID, req.Page, req.PerPage)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: paging.Map(page, newComment),
	}, nil
}

func (h *Handler) SearchUsers(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req SearchUserRequest
	_ = ctx.Context.ShouldBindQuery(&req)
	users, err := h.svc.SearchMentionCandidates(ctx.Request.Context(), req.Q)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: slice.Map(users, func(_ int, src domain.User) User {
			return newUser(src)
		}),
	}, nil
}

func pathID(ctx *ginx.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, bizerr.FieldError("id", "格式不正确")
	}
	return id, nil
}

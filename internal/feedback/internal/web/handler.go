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
	"context"
	"strconv"

	"github.com/ecodeclub/echoboard/internal/feedback/internal/domain"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/service"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/pkg/paging"
	"github.com/ecodeclub/echoboard/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.FeedbackService
	logger *elog.Component
}

func NewHandler(svc service.FeedbackService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/feedback", ginx.W(h.List))
	server.GET("/feedback/:id", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/feedback", ginx.BS[CreateRequest](h.Create))
	server.PUT("/feedback/:id", ginx.BS[UpdateRequest](h.Update))
	server.DELETE("/feedback/:id", ginx.S(h.Delete))
	// 投票不去重，登录即可
	server.POST("/feedback/:id/upvote", ginx.S(h.Upvote))
	server.POST("/feedback/:id/downvote", ginx.S(h.Downvote))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	var req ListRequest
	if err := ctx.Context.ShouldBindQuery(&req); err != nil {
		return errorResult(ctx, bizerr.FieldError("query", "格式不正确"))
	}
	page, err := h.svc.List(ctx.Request.Context(), domain.Filter{
		CategoryID: req.CategoryID,
		Status:     domain.Status(req.Status),
		Search:     req.Search,
	}, req.Page, req.PerPage)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: paging.Map(page, newFeedback),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	detail, err := h.svc.Detail(ctx.Request.Context(), id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newFeedbackDetail(detail),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	if err := validation.Struct(req); err != nil {
		return errorResult(ctx, err)
	}
	fb, err := h.svc.Create(ctx.Request.Context(), domain.Feedback{
		Title:       req.Title,
		Description: req.Description,
		User:        domain.User{ID: sess.Claims().Uid},
		Category:    domain.Category{ID: req.CategoryID},
	})
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newFeedback(fb),
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
	fb, err := h.svc.Update(ctx.Request.Context(), id, sess.Claims().Uid, req.toPatch())
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newFeedback(fb),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	if err = h.svc.Delete(ctx.Request.Context(), id, sess.Claims().Uid); err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Upvote(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	return h.vote(ctx, h.svc.Upvote)
}

func (h *Handler) Downvote(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	return h.vote(ctx, h.svc.Downvote)
}

func (h *Handler) vote(ctx *ginx.Context, fn func(ctx context.Context, id int64) (domain.Votes, error)) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return errorResult(ctx, err)
	}
	votes, err := fn(ctx.Request.Context(), id)
	if err != nil {
		return errorResult(ctx, err)
	}
	return ginx.Result{
		Data: newVotes(votes),
	}, nil
}

func pathID(ctx *ginx.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, bizerr.FieldError("id", "格式不正确")
	}
	return id, nil
}

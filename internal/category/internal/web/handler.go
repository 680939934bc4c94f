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
	"github.com/ecodeclub/echoboard/internal/category/internal/domain"
	"github.com/ecodeclub/echoboard/internal/category/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/feedback-categories", ginx.W(h.ActiveList))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) ActiveList(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ActiveList(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(cs, func(_ int, src domain.Category) Category {
			return newCategory(src)
		}),
	}, nil
}

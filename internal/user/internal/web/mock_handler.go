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

//go:build mock

package web

import (
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type MockLoginReq struct {
	Name string `json:"name"`
}

func (h *Handler) mockRoutes(server *gin.Engine) {
	server.POST("/users/mock/login", ginx.B[MockLoginReq](h.MockLogin))
}

// MockLogin 模拟的，用来开发测试环境省略登录过程，用户不存在就按名字创建一个
func (h *Handler) MockLogin(ctx *ginx.Context, req MockLoginReq) (ginx.Result, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "alice"
	}
	u, err := h.userSvc.FindOrCreateByName(ctx.Request.Context(), name)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: newProfile(u),
	}, nil
}

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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/echoboard/internal/test"
	testioc "github.com/ecodeclub/echoboard/internal/test/ioc"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ecodeclub/echoboard/internal/user/internal/errs"
	"github.com/ecodeclub/echoboard/internal/user/internal/repository/dao"
	"github.com/ecodeclub/echoboard/internal/user/internal/web"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	svc    user.UserService
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module := user.InitModule(s.db, testioc.InitCache())
	s.svc = module.Svc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `users`").Error
	require.NoError(s.T(), err)
	_, err = testioc.InitCache().Delete(context.Background(), "user:info:123")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestProfile() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name: "查询成功",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					Id:    uid,
					Name:  "alice",
					Email: "alice@example.com",
					Ctime: time.Now().UnixMilli(),
					Utime: time.Now().UnixMilli(),
				}).Error
				require.NoError(t, err)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{
					Id:    uid,
					Name:  "alice",
					Email: "alice@example.com",
				},
			},
		},
		{
			name:     "用户不存在",
			before:   func(t *testing.T) {},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Profile]{
				Code: errs.UserNotFound.Code,
				Msg:  errs.UserNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodGet, "/users/me", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestFindByNames() {
	t := s.T()
	now := time.Now().UnixMilli()
	users := []dao.User{
		{Name: "alice", Email: "alice@example.com", Ctime: now, Utime: now},
		{Name: "Alice", Email: "alice2@example.com", Ctime: now, Utime: now},
		{Name: "bob", Email: "bob@example.com", Ctime: now, Utime: now},
	}
	require.NoError(t, s.db.Create(&users).Error)

	res, err := s.svc.FindByNames(context.Background(), []string{"alice", "carol"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "alice", res[0].Name)
	assert.Equal(t, users[0].Id, res[0].Id)

	res, err = s.svc.FindByNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func (s *HandlerTestSuite) TestSearch() {
	t := s.T()
	now := time.Now().UnixMilli()
	users := []dao.User{
		{Name: "alice", Email: "alice@example.com", Ctime: now, Utime: now},
		{Name: "MALICE", Email: "malice@example.com", Ctime: now, Utime: now},
		{Name: "bob", Email: "bob@example.com", Ctime: now, Utime: now},
		{Name: "ali_baba", Email: "ali@example.com", Ctime: now, Utime: now},
	}
	require.NoError(t, s.db.Create(&users).Error)

	res, err := s.svc.Search(context.Background(), "ali", 10)
	require.NoError(t, err)
	names := make([]string, 0, len(res))
	for _, u := range res {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"alice", "MALICE", "ali_baba"}, names)

	// 下划线按字面量匹配
	res, err = s.svc.Search(context.Background(), "i_b", 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "ali_baba", res[0].Name)

	res, err = s.svc.Search(context.Background(), "ali", 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

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

	"github.com/ecodeclub/echoboard/internal/category"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository/dao"
	"github.com/ecodeclub/echoboard/internal/category/internal/web"
	"github.com/ecodeclub/echoboard/internal/test"
	testioc "github.com/ecodeclub/echoboard/internal/test/ioc"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *gin.Engine
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module := category.InitModule(s.db, testioc.InitCache())
	server := gin.Default()
	module.Hdl.PublicRoutes(server)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	_, err := testioc.InitCache().Delete(context.Background(), "category:active")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Model(&dao.Category{}).Where("name = ?", "Archived").Delete(&dao.Category{}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestActiveList() {
	t := s.T()
	err := s.db.Create(&dao.Category{Name: "Archived", Color: "#000000", Active: false}).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/feedback-categories", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.Category]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	names := slice.Map(res.Data, func(_ int, src web.Category) string {
		return src.Name
	})
	// 默认分类按名字排序，停用的分类不返回
	assert.Equal(t, []string{
		"Bug Report", "Feature Request", "General", "Improvement", "Performance", "UI/UX",
	}, names)
	for _, c := range res.Data {
		assert.True(t, c.Active)
		assert.Len(t, c.Color, 7)
	}
}

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

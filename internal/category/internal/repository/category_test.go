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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/echoboard/internal/category/internal/domain"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository/cache"
	cachemocks "github.com/ecodeclub/echoboard/internal/category/internal/repository/cache/mocks"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository/dao"
	daomocks "github.com/ecodeclub/echoboard/internal/category/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedCategoryRepository_ActiveList(t *testing.T) {
	bug := domain.Category{ID: 1, Name: "Bug Report", Color: "#DC2626", Active: true}
	general := domain.Category{ID: 6, Name: "General", Color: "#6B7280", Active: true}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.CategoryDAO, cache.CategoryCache)
		wantRes []domain.Category
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.CategoryDAO, cache.CategoryCache) {
				d := daomocks.NewMockCategoryDAO(ctrl)
				c := cachemocks.NewMockCategoryCache(ctrl)
				c.EXPECT().GetActiveList(gomock.Any()).Return([]domain.Category{bug, general}, nil)
				return d, c
			},
			wantRes: []domain.Category{bug, general},
		},
		{
			name: "未命中缓存，查询数据库并回写",
			mock: func(ctrl *gomock.Controller) (dao.CategoryDAO, cache.CategoryCache) {
				d := daomocks.NewMockCategoryDAO(ctrl)
				c := cachemocks.NewMockCategoryCache(ctrl)
				c.EXPECT().GetActiveList(gomock.Any()).Return(nil, cache.ErrCacheMiss)
				d.EXPECT().ActiveList(gomock.Any()).Return([]dao.Category{
					{Id: 1, Name: "Bug Report", Color: "#DC2626", Active: true},
					// 没有颜色的用默认颜色
					{Id: 6, Name: "General", Active: true},
				}, nil)
				c.EXPECT().SetActiveList(gomock.Any(), []domain.Category{bug, general}).Return(nil)
				return d, c
			},
			wantRes: []domain.Category{bug, general},
		},
		{
			name: "缓存出错，回写失败，不影响结果",
			mock: func(ctrl *gomock.Controller) (dao.CategoryDAO, cache.CategoryCache) {
				d := daomocks.NewMockCategoryDAO(ctrl)
				c := cachemocks.NewMockCategoryCache(ctrl)
				c.EXPECT().GetActiveList(gomock.Any()).Return(nil, errors.New("redis 超时"))
				d.EXPECT().ActiveList(gomock.Any()).Return([]dao.Category{
					{Id: 1, Name: "Bug Report", Color: "#DC2626", Active: true},
				}, nil)
				c.EXPECT().SetActiveList(gomock.Any(), gomock.Any()).Return(errors.New("redis 超时"))
				return d, c
			},
			wantRes: []domain.Category{bug},
		},
		{
			name: "数据库出错",
			mock: func(ctrl *gomock.Controller) (dao.CategoryDAO, cache.CategoryCache) {
				d := daomocks.NewMockCategoryDAO(ctrl)
				c := cachemocks.NewMockCategoryCache(ctrl)
				c.EXPECT().GetActiveList(gomock.Any()).Return(nil, cache.ErrCacheMiss)
				d.EXPECT().ActiveList(gomock.Any()).Return(nil, errors.New("db 错误"))
				return d, c
			},
			wantErr: errors.New("db 错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedCategoryRepository(tc.mock(ctrl))
			res, err := repo.ActiveList(context.Background())
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCachedCategoryRepository_FindByIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockCategoryDAO(ctrl)
	c := cachemocks.NewMockCategoryCache(ctrl)
	d.EXPECT().FindByIds(gomock.Any(), []int64{2, 3}).Return([]dao.Category{
		{Id: 2, Name: "Feature Request", Color: "#059669", Active: true, Ctime: 10, Utime: 20},
		{Id: 3, Name: "Improvement", Color: "#2563EB", Active: false},
	}, nil)
	repo := NewCachedCategoryRepository(d, c)
	res, err := repo.FindByIds(context.Background(), []int64{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: 2, Name: "Feature Request", Color: "#059669", Active: true, Ctime: 10, Utime: 20},
		{ID: 3, Name: "Improvement", Color: "#2563EB", Active: false},
	}, res)
}

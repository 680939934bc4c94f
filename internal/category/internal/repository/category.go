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

	"github.com/ecodeclub/echoboard/internal/category/internal/domain"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository/cache"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCategoryNotFound = dao.ErrRecordNotFound

type CategoryRepository interface {
	ActiveList(ctx context.Context) ([]domain.Category, error)
	FindById(ctx context.Context, id int64) (domain.Category, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Category, error)
}

type CachedCategoryRepository struct {
	dao    dao.CategoryDAO
	cache  cache.CategoryCache
	logger *elog.Component
}

func NewCachedCategoryRepository(d dao.CategoryDAO, c cache.CategoryCache) CategoryRepository {
	return &CachedCategoryRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedCategoryRepository) ActiveList(ctx context.Context) ([]domain.Category, error) {
	cs, err := repo.cache.GetActiveList(ctx)
	if err == nil {
		return cs, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		repo.logger.Error("查询分类缓存失败", elog.FieldErr(err))
	}
	entities, err := repo.dao.ActiveList(ctx)
	if err != nil {
		return nil, err
	}
	cs = repo.toDomains(entities)
	if err = repo.cache.SetActiveList(ctx, cs); err != nil {
		repo.logger.Error("回写分类缓存失败", elog.FieldErr(err))
	}
	return cs, nil
}

func (repo *CachedCategoryRepository) FindById(ctx context.Context, id int64) (domain.Category, error) {
	c, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(c), err
}

func (repo *CachedCategoryRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Category, error) {
	cs, err := repo.dao.FindByIds(ctx, ids)
	return repo.toDomains(cs), err
}

func (repo *CachedCategoryRepository) toDomains(cs []dao.Category) []domain.Category {
	return slice.Map(cs, func(_ int, src dao.Category) domain.Category {
		return repo.toDomain(src)
	})
}

func (repo *CachedCategoryRepository) toDomain(c dao.Category) domain.Category {
	color := c.Color
	if color == "" {
		color = domain.DefaultColor
	}
	return domain.Category{
		ID:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Color:       color,
		Active:      c.Active,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}

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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/echoboard/internal/category/internal/domain"
	"github.com/ecodeclub/echoboard/internal/category/internal/repository"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
)

//go:generate mockgen -source=./category.go -package=categorymocks -destination=../../mocks/category.mock.go Service
type Service interface {
	// ActiveList 所有启用的分类，按名字排序
	ActiveList(ctx context.Context) ([]domain.Category, error)
	// Detail 不存在时返回 bizerr.ErrNotFound
	Detail(ctx context.Context, id int64) (domain.Category, error)
	// FindByIds 返回 id 到分类的映射，不存在的 id 直接忽略
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.Category, error)
}

type service struct {
	repo repository.CategoryRepository
}

func NewService(repo repository.CategoryRepository) Service {
	return &service{repo: repo}
}

func (s *service) ActiveList(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ActiveList(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Category, error) {
	c, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domain.Category{}, fmt.Errorf("%w: category_id=%d", bizerr.ErrNotFound, id)
	}
	return c, err
}

func (s *service) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.Category, error) {
	res := make(map[int64]domain.Category, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	cs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		res[c.ID] = c
	}
	return res, nil
}

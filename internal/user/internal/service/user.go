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

	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/user/internal/domain"
	"github.com/ecodeclub/echoboard/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 批量查询，不存在的用户直接忽略
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// FindByNames 按名字精确查找（大小写敏感），不存在的名字直接忽略
	FindByNames(ctx context.Context, names []string) ([]domain.User, error)
	// Search 名字包含 keyword 的用户，最多 limit 个
	Search(ctx context.Context, keyword string, limit int) ([]domain.User, error)
	// FindOrCreateByName 开发环境模拟登录使用
	FindOrCreateByName(ctx context.Context, name string) (domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("%w: uid=%d", bizerr.ErrNotFound, id)
	}
	return u, err
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) FindByNames(ctx context.Context, names []string) ([]domain.User, error) {
	if len(names) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByNames(ctx, names)
}

func (svc *userService) Search(ctx context.Context, keyword string, limit int) ([]domain.User, error) {
	return svc.repo.SearchByName(ctx, keyword, limit)
}

func (svc *userService) FindOrCreateByName(ctx context.Context, name string) (domain.User, error) {
	u, err := svc.repo.FindByName(ctx, name)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	u = domain.User{
		Name:  name,
		Email: name + "@echoboard.local",
	}
	u.Id, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	svc.logger.Info("创建模拟登录用户", elog.Int64("uid", u.Id), elog.String("name", name))
	return u, nil
}

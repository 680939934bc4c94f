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

	"github.com/ecodeclub/echoboard/internal/user/internal/domain"
	"github.com/ecodeclub/echoboard/internal/user/internal/repository/cache"
	"github.com/ecodeclub/echoboard/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrUserNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	FindByName(ctx context.Context, name string) (domain.User, error)
	FindByNames(ctx context.Context, names []string) ([]domain.User, error)
	SearchByName(ctx context.Context, keyword string, limit int) ([]domain.User, error)
}

type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) FindByName(ctx context.Context, name string) (domain.User, error) {
	u, err := ur.dao.FindByName(ctx, name)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindByNames(ctx context.Context, names []string) ([]domain.User, error) {
	us, err := ur.dao.FindByNames(ctx, names)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) SearchByName(ctx context.Context, keyword string, limit int) ([]domain.User, error) {
	us, err := ur.dao.SearchByName(ctx, keyword, limit)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) toDomains(us []dao.User) []domain.User {
	return slice.Map(us, func(_ int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	})
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:    u.Id,
		Name:  u.Name,
		Email: u.Email,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:    ue.Id,
		Name:  ue.Name,
		Email: ue.Email,
		Ctime: ue.Ctime,
	}
}

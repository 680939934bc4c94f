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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/echoboard/internal/category/internal/domain"
	"github.com/pkg/errors"
)

const (
	activeListKey        = "active"
	activeListExpiration = 10 * time.Minute
)

var ErrCacheMiss = errors.New("缓存未命中")

//go:generate mockgen -source=./category.go -package=cachemocks -destination=mocks/category.mock.go CategoryCache
type CategoryCache interface {
	SetActiveList(ctx context.Context, cs []domain.Category) error
	GetActiveList(ctx context.Context) ([]domain.Category, error)
}

type categoryCache struct {
	ec ecache.Cache
}

func NewCategoryCache(ec ecache.Cache) CategoryCache {
	return &categoryCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "category:",
		},
	}
}

func (c *categoryCache) SetActiveList(ctx context.Context, cs []domain.Category) error {
	val, err := json.Marshal(cs)
	if err != nil {
		return errors.Wrap(err, "序列化分类失败")
	}
	return c.ec.Set(ctx, activeListKey, string(val), activeListExpiration)
}

func (c *categoryCache) GetActiveList(ctx context.Context) ([]domain.Category, error) {
	val := c.ec.Get(ctx, activeListKey)
	if val.KeyNotFound() {
		return nil, ErrCacheMiss
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var cs []domain.Category
	err := val.JSONScan(&cs)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化分类失败")
	}
	return cs, nil
}

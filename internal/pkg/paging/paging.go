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

package paging

import "github.com/ecodeclub/ekit/slice"

const (
	MaxPerPage = 100
	// MaxPage 保证 Offset 不会溢出
	MaxPage = 1_000_000
)

// Page 分页结果，字段命名和前端的分页组件保持一致
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	// From 和 To 是当前页第一条、最后一条记录的序号（从 1 开始），空页时都是 0
	From int `json:"from"`
	To   int `json:"to"`
}

// Normalize 规整分页参数。page 小于 1 按第一页处理，超过 MaxPage 截断，
// perPage 小于 1 用 defaultPerPage，超过 MaxPerPage 截断。
func Normalize(page, perPage, defaultPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func Offset(page, perPage int) int {
	page = min(max(page, 1), MaxPage)
	perPage = min(max(perPage, 0), MaxPerPage)
	return (page - 1) * perPage
}

func NewPage[T any](data []T, page, perPage int, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}
	res := Page[T]{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if len(data) > 0 {
		res.From = Offset(page, perPage) + 1
		res.To = res.From + len(data) - 1
	}
	return res
}

// Map 转换分页数据的元素类型，分页信息保持不变
func Map[S any, T any](p Page[S], fn func(src S) T) Page[T] {
	return Page[T]{
		Data: slice.Map(p.Data, func(_ int, src S) T {
			return fn(src)
		}),
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		LastPage:    p.LastPage,
		From:        p.From,
		To:          p.To,
	}
}

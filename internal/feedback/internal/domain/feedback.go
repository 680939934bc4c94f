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

package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// 前端历史上用过的别名
var statusAliases = map[string]Status{
	"resolved": StatusCompleted,
	"closed":   StatusRejected,
}

// ParseStatus 解析状态，别名会被规整成标准状态
func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch st := Status(s); st {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusRejected:
		return st, true
	}
	st, ok := statusAliases[s]
	return st, ok
}

func (s Status) String() string {
	return string(s)
}

type Feedback struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Upvotes     int64
	Downvotes   int64
	User        User
	Category    Category
	Ctime       time.Time
	Utime       time.Time
}

// NetScore 只在读取时计算，不落库
func (f Feedback) NetScore() int64 {
	return f.Upvotes - f.Downvotes
}

func (f Feedback) Votes() Votes {
	return Votes{Upvotes: f.Upvotes, Downvotes: f.Downvotes}
}

type Votes struct {
	Upvotes   int64
	Downvotes int64
}

func (v Votes) NetScore() int64 {
	return v.Upvotes - v.Downvotes
}

type User struct {
	ID    int64
	Name  string
	Email string
}

type Category struct {
	ID          int64
	Name        string
	Description string
	Color       string
}

// Patch 部分更新，nil 表示不修改
type Patch struct {
	Title       *string
	Description *string
	CategoryID  *int64
	Status      *string
}

// Filter 列表的过滤条件，零值表示不过滤，多个条件之间是 AND
type Filter struct {
	CategoryID int64
	Status     Status
	// Search 标题或者描述里面包含的关键字，忽略大小写
	Search string
}

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

	"github.com/ecodeclub/echoboard/internal/pkg/markdown"
	"github.com/ecodeclub/echoboard/internal/user"
)

// MentionExtractor 解析内容里 @ 到的用户
type MentionExtractor struct {
	userSvc user.UserService
}

func NewMentionExtractor(userSvc user.UserService) *MentionExtractor {
	return &MentionExtractor{userSvc: userSvc}
}

// Extract 返回被 @ 的用户 ID，名字大小写敏感，不存在的用户直接忽略。
// 没有任何 @ 的时候不会查询用户。
func (m *MentionExtractor) Extract(ctx context.Context, content string) ([]int64, error) {
	names := markdown.MentionNames(content)
	if len(names) == 0 {
		return []int64{}, nil
	}
	users, err := m.userSvc.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(users))
	seen := make(map[int64]struct{}, len(users))
	for _, u := range users {
		if _, ok := seen[u.Id]; ok {
			continue
		}
		seen[u.Id] = struct{}{}
		ids = append(ids, u.Id)
	}
	return ids, nil
}

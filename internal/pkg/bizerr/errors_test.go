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

package bizerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() *ValidationError
		wantNil   bool
		wantMsg   string
		wantField map[string][]string
	}{
		{
			name:    "没有错误",
			build:   NewValidationError,
			wantNil: true,
		},
		{
			name: "单个字段",
			build: func() *ValidationError {
				return FieldError("content", "评论内容不能为空")
			},
			wantMsg:   "参数校验失败 content: 评论内容不能为空",
			wantField: map[string][]string{"content": {"评论内容不能为空"}},
		},
		{
			name: "多个字段按名字排序",
			build: func() *ValidationError {
				return NewValidationError().
					Add("title", "标题不能为空").
					Add("description", "描述不能为空").
					Add("title", "标题过长")
			},
			wantMsg: "参数校验失败 description: 描述不能为空, title: 标题不能为空; 标题过长",
			wantField: map[string][]string{
				"title":       {"标题不能为空", "标题过长"},
				"description": {"描述不能为空"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ve := tc.build()
			err := ve.OrNil()
			if tc.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
			assert.Equal(t, tc.wantField, ve.Fields)
		})
	}
}

func TestAsValidation(t *testing.T) {
	wrapped := fmt.Errorf("创建评论失败: %w", FieldError("parent_id", "父评论不属于该反馈"))
	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"父评论不属于该反馈"}, ve.Fields["parent_id"])

	_, ok = AsValidation(errors.New("mock db error"))
	assert.False(t, ok)
	_, ok = AsValidation(fmt.Errorf("%w", ErrNotFound))
	assert.False(t, ok)
}

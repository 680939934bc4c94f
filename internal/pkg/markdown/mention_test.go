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

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionNames(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "没有提及", input: "没有人被提到", want: []string{}},
		{name: "重复提及只保留一次", input: "@alice @bob @alice", want: []string{"alice", "bob"}},
		{name: "大小写不同视为不同名字", input: "@alice @Alice", want: []string{"alice", "Alice"}},
		{name: "邮箱里的 @ 也会匹配", input: "发到 bob@example.com", want: []string{"example"}},
		{name: "标点截断名字", input: "@carol, @dave_1!", want: []string{"carol", "dave_1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MentionNames(tc.input))
		})
	}
}

func TestRewriteMentions(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "没有提及", input: "普通内容", want: "普通内容"},
		{name: "单个提及", input: "你好 @alice", want: "你好 [@alice](#user/alice)"},
		{
			name:  "多个提及包含下划线和数字",
			input: "@bob_2 和 @alice 看看",
			want:  "[@bob_2](#user/bob_2) 和 [@alice](#user/alice) 看看",
		},
		{name: "只有@符号", input: "@ 一下", want: "@ 一下"},
		{name: "不存在的用户也改写", input: "@ghost", want: "[@ghost](#user/ghost)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RewriteMentions(tc.input))
		})
	}
}

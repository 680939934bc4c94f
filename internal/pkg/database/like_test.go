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

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	testCases := []struct {
		name    string
		keyword string
		want    string
	}{
		{name: "普通关键字", keyword: "crash", want: "%crash%"},
		{name: "百分号", keyword: "100%", want: `%100\%%`},
		{name: "下划线", keyword: "user_name", want: `%user\_name%`},
		{name: "反斜杠", keyword: `a\b`, want: `%a\\b%`},
		{name: "空字符串", keyword: "", want: "%%"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsPattern(tc.keyword))
		})
	}
}

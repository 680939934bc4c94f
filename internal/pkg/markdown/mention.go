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

import "regexp"

// MentionPattern 匹配 @ 后面连续的字母、数字、下划线
var MentionPattern = regexp.MustCompile(`@(\w+)`)

// MentionNames 提取所有被 @ 的名字，按第一次出现的顺序去重
func MentionNames(raw string) []string {
	matches := MentionPattern.FindAllStringSubmatch(raw, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// RewriteMentions 把 @name 改写成指向用户的 markdown 链接，不管用户是否存在
func RewriteMentions(raw string) string {
	return MentionPattern.ReplaceAllString(raw, "[@${1}](#user/${1})")
}

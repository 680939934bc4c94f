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
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	blockClosePattern = regexp.MustCompile(`</(p|li|h[1-6]|blockquote|pre|tr)>|<br\s*/?>`)
	spacePattern      = regexp.MustCompile(`\s+`)
)

// Excerpt 把渲染后的 HTML 转成单行纯文本摘要，超过 maxRunes 个字符时截断并追加省略号。
// 和展示用的 HTML 不同，链接只保留文字，所以 @name 依旧可读。
func Excerpt(content string, maxRunes int) string {
	content = blockClosePattern.ReplaceAllString(content, " ")
	content = tagPattern.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = strings.TrimSpace(spacePattern.ReplaceAllString(content, " "))
	if maxRunes <= 0 || utf8.RuneCountInString(content) <= maxRunes {
		return content
	}
	runes := []rune(content)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}

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
	"bytes"
	"html"

	"github.com/gotomicro/ego/core/elog"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer 把用户输入的 markdown 转成可以安全展示的 HTML。
// 实现必须是确定性的，同样的输入得到完全相同的输出。
type Renderer interface {
	Render(raw string) string
}

type GoldmarkRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger *elog.Component
}

func NewRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		// 默认的 HTML renderer 不输出原始 HTML，也会过滤 javascript: 之类的危险链接
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
		logger: elog.DefaultLogger,
	}
}

func (r *GoldmarkRenderer) Render(raw string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(RewriteMentions(raw)), &buf); err != nil {
		r.logger.Error("markdown 转换失败", elog.FieldErr(err), elog.Int("len", len(raw)))
		return "<p>" + html.EscapeString(raw) + "</p>"
	}
	return r.policy.Sanitize(buf.String())
}

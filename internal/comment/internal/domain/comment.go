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

// MaxReplyDepth 前端允许继续回复的最大层级，服务端不做限制
const MaxReplyDepth = 3

type User struct {
	ID    int64
	Name  string
	Email string
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 所属的反馈
	FeedbackID int64
	// 回复的父评论，0 表示直接评论反馈
	ParentID int64

	// 原始的 markdown 内容
	Content string
	// 渲染并过滤后的 HTML
	ContentHTML string
	// 内容里 @ 到的用户，每次创建、修改时重新计算
	MentionedUsers []int64

	Ctime int64
	Utime int64

	Replies []Comment
}

func (c Comment) IsTopLevel() bool {
	return c.ParentID == 0
}

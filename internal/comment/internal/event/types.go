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

package event

import (
	"context"

	"github.com/ecodeclub/echoboard/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const MentionEventName = "comment_mention_events"

// MentionEvent 评论里 @ 到了其他用户，通知服务消费后提醒被提及的人
type MentionEvent struct {
	CommentID  int64 `json:"commentID"`
	FeedbackID int64 `json:"feedbackID"`
	// 评论的作者，不会出现在 Uids 里
	AuthorID int64   `json:"authorID"`
	Uids     []int64 `json:"uids"`
	// 评论内容的纯文本摘要
	Excerpt string `json:"excerpt"`
}

func (MentionEvent) Topic() string {
	return MentionEventName
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=./mocks/mention.mock.go MentionEventProducer
type MentionEventProducer interface {
	Produce(ctx context.Context, evt MentionEvent) error
}

func NewMentionEventProducer(q mq.MQ) (MentionEventProducer, error) {
	p, err := mqx.NewJSONProducer[MentionEvent](q)
	if err != nil {
		return nil, err
	}
	return p, nil
}

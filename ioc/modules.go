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

package ioc

import (
	"github.com/ecodeclub/echoboard/internal/comment"
	"github.com/ecodeclub/echoboard/internal/feedback"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

// InitCommentModule 评论模块依赖反馈是否存在，反馈模块又依赖评论模块，
// 所以这里先单独构造反馈的检查器
func InitCommentModule(db *egorm.Component, q mq.MQ, userModule *user.Module) (*comment.Module, error) {
	checker, err := feedback.NewFeedbackChecker(db)
	if err != nil {
		return nil, err
	}
	return comment.InitModule(db, q, userModule, checker)
}

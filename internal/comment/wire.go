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

//go:build wireinject

package comment

import (
	"sync"

	"github.com/ecodeclub/echoboard/internal/comment/internal/event"
	"github.com/ecodeclub/echoboard/internal/comment/internal/repository"
	"github.com/ecodeclub/echoboard/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/echoboard/internal/comment/internal/service"
	"github.com/ecodeclub/echoboard/internal/comment/internal/web"
	"github.com/ecodeclub/echoboard/internal/pkg/markdown"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(
	db *egorm.Component,
	q mq.MQ,
	userModule *user.Module,
	checker FeedbackChecker) (*Module, error) {
	wire.Build(
		initCommentDAO,
		initRenderer,
		event.NewMentionEventProducer,
		repository.NewCommentRepository,
		service.NewCommentService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	daoOnce = &sync.Once{}
	// daoErr 建表失败之后，后续每次初始化都返回同一个错误
	daoErr error
)

func initCommentDAO(db *egorm.Component) (dao.CommentDAO, error) {
	daoOnce.Do(func() {
		daoErr = dao.InitTables(db)
	})
	if daoErr != nil {
		return nil, daoErr
	}
	return dao.NewCommentGORMDAO(db), nil
}

func initRenderer() markdown.Renderer {
	return markdown.NewRenderer()
}

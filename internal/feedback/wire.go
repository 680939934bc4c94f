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

package feedback

import (
	"sync"

	"github.com/ecodeclub/echoboard/internal/category"
	"github.com/ecodeclub/echoboard/internal/comment"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/repository"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/service"
	"github.com/ecodeclub/echoboard/internal/feedback/internal/web"
	"github.com/ecodeclub/echoboard/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	userModule *user.Module,
	categoryModule *category.Module,
	commentModule *comment.Module) (*Module, error) {
	wire.Build(
		initFeedbackDAO,
		repository.NewFeedbackRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*category.Module), "Svc"),
		wire.FieldsOf(new(*comment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// NewFeedbackChecker 评论模块用来确认反馈存在，评论模块先于反馈模块初始化
func NewFeedbackChecker(db *egorm.Component) (comment.FeedbackChecker, error) {
	d, err := initFeedbackDAO(db)
	if err != nil {
		return nil, err
	}
	return repository.NewFeedbackRepository(d), nil
}

var (
	daoOnce = &sync.Once{}
	// daoErr 建表失败之后，后续每次初始化都返回同一个错误
	daoErr error
)

func initFeedbackDAO(db *egorm.Component) (dao.FeedbackDAO, error) {
	daoOnce.Do(func() {
		daoErr = dao.InitTables(db)
	})
	if daoErr != nil {
		return nil, daoErr
	}
	return dao.NewFeedbackDAO(db), nil
}

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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/user/internal/domain"
	"github.com/ecodeclub/echoboard/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/echoboard/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_Profile(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.User{Id: 1, Name: "alice"}, nil)
				return repo
			},
			wantUser: domain.User{Id: 1, Name: "alice"},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.User{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))

			u, err := svc.Profile(context.Background(), 1)
			switch {
			case tc.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tc.wantUser, u)
			case errors.Is(tc.wantErr, bizerr.ErrNotFound):
				assert.ErrorIs(t, err, bizerr.ErrNotFound)
			default:
				assert.EqualError(t, err, tc.wantErr.Error())
			}
		})
	}
}

func TestUserService_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// 空参数不访问数据库
	svc := NewUserService(repomocks.NewMockUserRepository(ctrl))

	us, err := svc.BatchProfile(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{}, us)

	us, err = svc.FindByNames(context.Background(), []string{})
	require.NoError(t, err)
	assert.Equal(t, []domain.User{}, us)
}

func TestUserService_FindOrCreateByName(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(repo *repomocks.MockUserRepository)
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "已经存在",
			mock: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByName(gomock.Any(), "alice").
					Return(domain.User{Id: 1, Name: "alice", Email: "alice@example.com"}, nil)
			},
			wantUser: domain.User{Id: 1, Name: "alice", Email: "alice@example.com"},
		},
		{
			name: "不存在就创建",
			mock: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByName(gomock.Any(), "alice").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.User{
					Name:  "alice",
					Email: "alice@echoboard.local",
				}).Return(int64(7), nil)
			},
			wantUser: domain.User{Id: 7, Name: "alice", Email: "alice@echoboard.local"},
		},
		{
			name: "创建失败",
			mock: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByName(gomock.Any(), "alice").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockUserRepository(ctrl)
			tc.mock(repo)

			u, err := NewUserService(repo).FindOrCreateByName(context.Background(), "alice")
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

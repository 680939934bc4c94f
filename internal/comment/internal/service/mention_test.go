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

	"github.com/ecodeclub/echoboard/internal/user"
	usermocks "github.com/ecodeclub/echoboard/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMentionExtractor_Extract(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		mock    func(svc *usermocks.MockUserService)
		wantRes []int64
		wantErr error
	}{
		{
			name:    "没有提及不查询用户",
			content: "这个功能很好用",
			mock:    func(svc *usermocks.MockUserService) {},
			wantRes: []int64{},
		},
		{
			name:    "重复提及只查询一次",
			content: "@alice 你看下，@alice @bob",
			mock: func(svc *usermocks.MockUserService) {
				svc.EXPECT().FindByNames(gomock.Any(), []string{"alice", "bob"}).
					Return([]user.User{{Id: 1, Name: "alice"}, {Id: 2, Name: "bob"}}, nil)
			},
			wantRes: []int64{1, 2},
		},
		{
			name:    "不存在的用户直接忽略",
			content: "@alice @ghost",
			mock: func(svc *usermocks.MockUserService) {
				svc.EXPECT().FindByNames(gomock.Any(), []string{"alice", "ghost"}).
					Return([]user.User{{Id: 1, Name: "alice"}}, nil)
			},
			wantRes: []int64{1},
		},
		{
			name:    "都不存在",
			content: "@ghost",
			mock: func(svc *usermocks.MockUserService) {
				svc.EXPECT().FindByNames(gomock.Any(), []string{"ghost"}).
					Return([]user.User{}, nil)
			},
			wantRes: []int64{},
		},
		{
			name:    "查询用户出错",
			content: "@alice",
			mock: func(svc *usermocks.MockUserService) {
				svc.EXPECT().FindByNames(gomock.Any(), []string{"alice"}).
					Return(nil, errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			userSvc := usermocks.NewMockUserService(ctrl)
			tc.mock(userSvc)
			res, err := NewMentionExtractor(userSvc).Extract(context.Background(), tc.content)
			assert.Equal(t, tc.wantErr, err)
			if err == nil {
				assert.NotNil(t, res)
				assert.ElementsMatch(t, tc.wantRes, res)
			}
		})
	}
}

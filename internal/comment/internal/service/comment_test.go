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

	"github.com/ecodeclub/echoboard/internal/comment/internal/domain"
	"github.com/ecodeclub/echoboard/internal/comment/internal/event"
	evtmocks "github.com/ecodeclub/echoboard/internal/comment/internal/event/mocks"
	"github.com/ecodeclub/echoboard/internal/comment/internal/repository"
	repomocks "github.com/ecodeclub/echoboard/internal/comment/internal/repository/mocks"
	commentmocks "github.com/ecodeclub/echoboard/internal/comment/mocks"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/echoboard/internal/pkg/markdown"
	"github.com/ecodeclub/echoboard/internal/user"
	usermocks "github.com/ecodeclub/echoboard/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice = int64(1)
	bob   = int64(2)
	carol = int64(3)
)

type mocks struct {
	repo     *repomocks.MockCommentRepository
	userSvc  *usermocks.MockUserService
	checker  *commentmocks.MockFeedbackChecker
	producer *evtmocks.MockMentionEventProducer
}

func newTestService(ctrl *gomock.Controller) (CommentService, mocks) {
	m := mocks{
		repo:     repomocks.NewMockCommentRepository(ctrl),
		userSvc:  usermocks.NewMockUserService(ctrl),
		checker:  commentmocks.NewMockFeedbackChecker(ctrl),
		producer: evtmocks.NewMockMentionEventProducer(ctrl),
	}
	svc := NewCommentService(m.userSvc, m.repo, m.checker, markdown.NewRenderer(), m.producer)
	return svc, m
}

// expectProfiles 作者信息查询，返回 alice、bob、carol 三个用户里被查询到的
func expectProfiles(m mocks) {
	users := map[int64]user.User{
		alice: {Id: alice, Name: "alice", Email: "alice@example.com"},
		bob:   {Id: bob, Name: "bob", Email: "bob@example.com"},
		carol: {Id: carol, Name: "carol", Email: "carol@example.com"},
	}
	m.userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]user.User, error) {
			res := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := users[id]; ok {
					res = append(res, u)
				}
			}
			return res, nil
		}).AnyTimes()
}

func TestCommentService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		req     domain.Comment
		wantErr error
		// 只有 wantErr 是 ValidationError 的时候才检查
		wantFields []string
		assert     func(t *testing.T, c domain.Comment)
	}{
		{
			name: "创建直接评论并提醒被提及的人",
			mock: func(m mocks) {
				m.checker.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.userSvc.EXPECT().FindByNames(gomock.Any(), []string{"bob", "alice"}).
					Return([]user.User{{Id: bob, Name: "bob"}, {Id: alice, Name: "alice"}}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c domain.Comment) (int64, error) {
						assert.Equal(t, []int64{bob, alice}, c.MentionedUsers)
						assert.Contains(t, c.ContentHTML, `href="#user/bob"`)
						assert.Equal(t, int64(0), c.ParentID)
						return 100, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, evt event.MentionEvent) error {
						assert.Equal(t, int64(100), evt.CommentID)
						assert.Equal(t, int64(10), evt.FeedbackID)
						assert.Equal(t, alice, evt.AuthorID)
						// 作者自己不需要提醒
						assert.Equal(t, []int64{bob}, evt.Uids)
						assert.Equal(t, "@bob 看看这个，@alice 也是", evt.Excerpt)
						return nil
					})
				m.repo.EXPECT().FindSubtree(gomock.Any(), int64(100)).Return([]domain.Comment{
					{ID: 100, User: domain.User{ID: alice}, FeedbackID: 10, Content: "@bob 看看这个，@alice 也是"},
				}, nil)
				expectProfiles(m)
			},
			req: domain.Comment{
				User:       domain.User{ID: alice},
				FeedbackID: 10,
				Content:    "@bob 看看这个，@alice 也是",
			},
			assert: func(t *testing.T, c domain.Comment) {
				assert.Equal(t, int64(100), c.ID)
				assert.Equal(t, "alice", c.User.Name)
				assert.Empty(t, c.Replies)
			},
		},
		{
			name: "回复评论，发送消息失败不影响结果",
			mock: func(m mocks) {
				m.checker.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(50)).
					Return(domain.Comment{ID: 50, FeedbackID: 10, User: domain.User{ID: bob}}, nil)
				m.userSvc.EXPECT().FindByNames(gomock.Any(), []string{"bob"}).
					Return([]user.User{{Id: bob, Name: "bob"}}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(101), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 不可用"))
				m.repo.EXPECT().FindSubtree(gomock.Any(), int64(101)).Return([]domain.Comment{
					{ID: 101, ParentID: 50, User: domain.User{ID: carol}, FeedbackID: 10},
				}, nil)
				expectProfiles(m)
			},
			req: domain.Comment{
				User:       domain.User{ID: carol},
				FeedbackID: 10,
				ParentID:   50,
				Content:    "同意 @bob",
			},
			assert: func(t *testing.T, c domain.Comment) {
				assert.Equal(t, int64(101), c.ID)
				assert.Equal(t, int64(50), c.ParentID)
				assert.Equal(t, "carol", c.User.Name)
			},
		},
		{
			name:       "内容为空白",
			mock:       func(m mocks) {},
			req:        domain.Comment{User: domain.User{ID: alice}, FeedbackID: 10, Content: "  \n\t "},
			wantErr:    &bizerr.ValidationError{},
			wantFields: []string{"content"},
		},
		{
			name: "反馈不存在",
			mock: func(m mocks) {
				m.checker.EXPECT().Exists(gomock.Any(), int64(404)).Return(false, nil)
			},
			req:     domain.Comment{User: domain.User{ID: alice}, FeedbackID: 404, Content: "hello"},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "父评论不存在",
			mock: func(m mocks) {
				m.checker.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(999)).
					Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			req:     domain.Comment{User: domain.User{ID: alice}, FeedbackID: 10, ParentID: 999, Content: "hello"},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "父评论属于其他反馈",
			mock: func(m mocks) {
				m.checker.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(60)).
					Return(domain.Comment{ID: 60, FeedbackID: 11}, nil)
			},
			req:        domain.Comment{User: domain.User{ID: alice}, FeedbackID: 10, ParentID: 60, Content: "hello"},
			wantErr:    &bizerr.ValidationError{},
			wantFields: []string{"parent_id"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			res, err := svc.Create(context.Background(), tc.req)
			assertErr(t, tc.wantErr, tc.wantFields, err)
			if err == nil {
				tc.assert(t, res)
			}
		})
	}
}

func TestCommentService_Update(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(m mocks)
		id         int64
		content    string
		uid        int64
		wantErr    error
		wantFields []string
	}{
		{
			name: "修改成功，只提醒新提及的人",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(domain.Comment{
					ID: 7, FeedbackID: 10, User: domain.User{ID: alice},
					Content: "@bob", MentionedUsers: []int64{bob},
				}, nil)
				m.userSvc.EXPECT().FindByNames(gomock.Any(), []string{"bob", "carol"}).
					Return([]user.User{{Id: bob}, {Id: carol}}, nil)
				m.repo.EXPECT().UpdateContent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c domain.Comment) error {
						assert.Equal(t, "@bob @carol", c.Content)
						assert.ElementsMatch(t, []int64{bob, carol}, c.MentionedUsers)
						assert.Contains(t, c.ContentHTML, `href="#user/carol"`)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, evt event.MentionEvent) error {
						assert.Equal(t, []int64{carol}, evt.Uids)
						return nil
					})
				m.repo.EXPECT().FindSubtree(gomock.Any(), int64(7)).Return([]domain.Comment{
					{ID: 7, FeedbackID: 10, User: domain.User{ID: alice}, Content: "@bob @carol"},
				}, nil)
				expectProfiles(m)
			},
			id:      7,
			content: "@bob @carol",
			uid:     alice,
		},
		{
			name: "不是作者",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Comment{ID: 7, User: domain.User{ID: alice}}, nil)
			},
			id:      7,
			content: "改一下",
			uid:     bob,
			wantErr: bizerr.ErrPermissionDenied,
		},
		{
			name: "评论不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(8)).
					Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			id:      8,
			content: "改一下",
			uid:     alice,
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "内容为空",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Comment{ID: 7, User: domain.User{ID: alice}}, nil)
			},
			id:         7,
			content:    " ",
			uid:        alice,
			wantErr:    &bizerr.ValidationError{},
			wantFields: []string{"content"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			res, err := svc.Update(context.Background(), tc.id, tc.content, tc.uid)
			assertErr(t, tc.wantErr, tc.wantFields, err)
			if err == nil {
				assert.Equal(t, tc.id, res.ID)
				assert.Equal(t, tc.content, res.Content)
			}
		})
	}
}

func TestCommentService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		uid     int64
		wantCnt int64
		wantErr error
	}{
		{
			name: "删除评论以及所有回复",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Comment{ID: 7, User: domain.User{ID: alice}}, nil)
				m.repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(int64(4), nil)
			},
			uid:     alice,
			wantCnt: 4,
		},
		{
			name: "不是作者",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Comment{ID: 7, User: domain.User{ID: alice}}, nil)
			},
			uid:     bob,
			wantErr: bizerr.ErrPermissionDenied,
		},
		{
			name: "评论不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			uid:     alice,
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			cnt, err := svc.Delete(context.Background(), 7, tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantCnt, cnt)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)

	m.checker.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil).Times(2)
	// 第二页，每页 2 条
	m.repo.EXPECT().FindPage(gomock.Any(), int64(10), 2, 2).Return([]domain.Comment{
		{ID: 3, FeedbackID: 10, User: domain.User{ID: alice}, Ctime: 30},
		{ID: 4, FeedbackID: 10, User: domain.User{ID: bob}, Ctime: 40},
		{ID: 5, FeedbackID: 10, ParentID: 3, User: domain.User{ID: carol}, Ctime: 50},
		{ID: 6, FeedbackID: 10, ParentID: 5, User: domain.User{ID: alice}, Ctime: 60},
	}, int64(5), nil)
	expectProfiles(m)

	page, err := svc.List(context.Background(), 10, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Data[0].ID)
	assert.Equal(t, "alice", page.Data[0].User.Name)
	require.Len(t, page.Data[0].Replies, 1)
	assert.Equal(t, "carol", page.Data[0].Replies[0].User.Name)
	require.Len(t, page.Data[0].Replies[0].Replies, 1)
	assert.Equal(t, int64(6), page.Data[0].Replies[0].Replies[0].ID)
	assert.Equal(t, int64(4), page.Data[1].ID)
	assert.Empty(t, page.Data[1].Replies)

	// 分页参数超出范围时使用默认值和上限
	m.repo.EXPECT().FindPage(gomock.Any(), int64(10), 0, 100).Return(nil, int64(0), nil)
	page, err = svc.List(context.Background(), 10, 0, 1000)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 100, page.PerPage)
}

func TestCommentService_List_FeedbackNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.checker.EXPECT().Exists(gomock.Any(), int64(404)).Return(false, nil)
	_, err := svc.List(context.Background(), 404, 1, 20)
	assert.ErrorIs(t, err, bizerr.ErrNotFound)
}

func TestCommentService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.repo.EXPECT().FindSubtree(gomock.Any(), int64(5)).Return([]domain.Comment{
		{ID: 5, ParentID: 3, User: domain.User{ID: carol}, Ctime: 50},
		{ID: 8, ParentID: 5, User: domain.User{ID: bob}, Ctime: 80},
		{ID: 7, ParentID: 5, User: domain.User{ID: alice}, Ctime: 70},
	}, nil)
	m.repo.EXPECT().FindSubtree(gomock.Any(), int64(404)).Return(nil, repository.ErrCommentNotFound)
	expectProfiles(m)

	c, err := svc.Detail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	require.Len(t, c.Replies, 2)
	assert.Equal(t, int64(7), c.Replies[0].ID)
	assert.Equal(t, "alice", c.Replies[0].User.Name)
	assert.Equal(t, int64(8), c.Replies[1].ID)

	_, err = svc.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, bizerr.ErrNotFound)
}

func TestCommentService_SearchMentionCandidates(t *testing.T) {
	testCases := []struct {
		name    string
		q       string
		mock    func(m mocks)
		wantRes []domain.User
	}{
		{
			name:    "关键字太短不查询",
			q:       " a ",
			mock:    func(m mocks) {},
			wantRes: []domain.User{},
		},
		{
			name: "最多十个候选",
			q:    "ali",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Search(gomock.Any(), "ali", 10).
					Return([]user.User{{Id: alice, Name: "alice", Email: "alice@example.com"}}, nil)
			},
			wantRes: []domain.User{{ID: alice, Name: "alice", Email: "alice@example.com"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			res, err := svc.SearchMentionCandidates(context.Background(), tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func assertErr(t *testing.T, wantErr error, wantFields []string, err error) {
	t.Helper()
	var ve *bizerr.ValidationError
	if errors.As(wantErr, &ve) {
		got, ok := bizerr.AsValidation(err)
		require.True(t, ok, "期望 ValidationError，实际 %v", err)
		for _, f := range wantFields {
			assert.Contains(t, got.Fields, f)
		}
		return
	}
	if wantErr == nil {
		require.NoError(t, err)
		return
	}
	assert.ErrorIs(t, err, wantErr)
}

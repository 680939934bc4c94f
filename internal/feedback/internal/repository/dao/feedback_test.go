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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestFeedbackDAO_IncrUpvotes(t *testing.T) {
	incrSQL := regexp.QuoteMeta("UPDATE `feedbacks` SET `upvotes`=upvotes + ? WHERE id = ?")
	findSQL := regexp.QuoteMeta("SELECT * FROM `feedbacks` WHERE id = ?")
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantFb  Feedback
		wantErr error
	}{
		{
			name: "加一成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(incrSQL).WithArgs(1, int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(findSQL).
					WillReturnRows(sqlmock.NewRows([]string{"id", "upvotes", "downvotes"}).
						AddRow(7, 6, 2))
			},
			wantFb: Feedback{ID: 7, Upvotes: 6, Downvotes: 2},
		},
		{
			name: "反馈不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(incrSQL).WithArgs(1, int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "更新失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(incrSQL).WithArgs(1, int64(7)).
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()
			tc.mock(mock)

			fb, err := NewFeedbackDAO(openDB(t, sqlDB)).IncrUpvotes(context.Background(), 7)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantFb, fb)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFeedbackDAO_Count(t *testing.T) {
	testCases := []struct {
		name   string
		filter ListFilter
		mock   func(mock sqlmock.Sqlmock)
	}{
		{
			name: "不过滤",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `feedbacks`")).
					WithoutArgs().
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
		},
		{
			name:   "所有条件都用 AND 连接",
			filter: ListFilter{CategoryID: 2, Status: "open", Search: "crash_"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `feedbacks` "+
					"WHERE feedback_category_id = ? AND status = ? AND "+
					"((LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)))")).
					WithArgs(int64(2), "open", `%crash\_%`, `%crash\_%`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()
			tc.mock(mock)

			cnt, err := NewFeedbackDAO(openDB(t, sqlDB)).Count(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(3), cnt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func openDB(t *testing.T, sqlDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

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

package validation

import (
	"testing"

	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createReq struct {
	Title      string  `json:"title" validate:"required,max=10"`
	CategoryID int64   `json:"feedback_category_id" validate:"required,gt=0"`
	Status     *string `json:"status" validate:"omitempty,oneof=open closed"`
	Ignored    string  `json:"-"`
}

func TestStruct(t *testing.T) {
	closed := "closed"
	unknown := "unknown"
	testCases := []struct {
		name       string
		req        createReq
		wantFields map[string][]string
	}{
		{
			name: "校验通过",
			req:  createReq{Title: "标题", CategoryID: 1, Status: &closed},
		},
		{
			name: "缺少必填字段",
			req:  createReq{},
			wantFields: map[string][]string{
				"title":                {"不能为空"},
				"feedback_category_id": {"不能为空"},
			},
		},
		{
			name: "超长和非法枚举",
			req:  createReq{Title: "12345678901", CategoryID: 2, Status: &unknown},
			wantFields: map[string][]string{
				"title":  {"长度不能超过 10"},
				"status": {"必须是 [open closed] 之一"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.req)
			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			ve, ok := bizerr.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantFields, ve.Fields)
		})
	}
}

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

package bizerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound 资源不存在，由各模块的 repository 从 gorm.ErrRecordNotFound 转化而来
	ErrNotFound = errors.New("资源不存在")
	// ErrPermissionDenied 当前用户不是资源的所有者
	ErrPermissionDenied = errors.New("无权操作该资源")
)

// ValidationError 请求字段校验失败，Fields 的 key 是字段名，value 是该字段的错误信息
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string, 2)}
}

// FieldError 构造只有一个字段出错的 ValidationError
func FieldError(field, msg string) *ValidationError {
	return NewValidationError().Add(field, msg)
}

func (e *ValidationError) Add(field, msg string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil 没有任何字段出错时返回 nil，方便在校验函数末尾直接返回
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "参数校验失败 " + strings.Join(parts, ", ")
}

// AsValidation 判断 err 链上是否有 ValidationError
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/echoboard/internal/feedback/internal/errs"
	"github.com/ecodeclub/echoboard/internal/pkg/bizerr"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.FeedbackNotFound.Code,
		Msg:  errs.FeedbackNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)

func errorResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	if ve, ok := bizerr.AsValidation(err); ok {
		return ginx.Result{
			Code: errs.ValidationError.Code,
			Msg:  errs.ValidationError.Msg,
			Data: ve.Fields,
		}, nil
	}
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		return notFoundResult, nil
	case errors.Is(err, bizerr.ErrPermissionDenied):
		ctx.AbortWithStatusJSON(http.StatusForbidden, permissionDeniedResult)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	return systemErrorResult, err
}

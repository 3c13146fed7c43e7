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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrhub/internal/opening/internal/errs"
	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.OpeningNotFound.Code,
		Msg:  errs.OpeningNotFound.Msg,
	}
)

func invalidInputResult(err error) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  err.Error(),
	}
}

func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, bizerr.ErrValidation):
		return invalidInputResult(err)
	case errors.Is(err, bizerr.ErrNotFound):
		return notFoundResult
	default:
		return systemErrorResult
	}
}

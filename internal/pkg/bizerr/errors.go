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

// Package bizerr 定义了各个模块共享的错误分类，
// 具体的错误都应该 wrap 这里的某一个，调用方用 errors.Is 判断类别。
package bizerr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("参数校验失败")
	ErrNotFound   = errors.New("记录不存在")
	ErrConflict   = errors.New("数据冲突")
	ErrStorage    = errors.New("存储错误")
)

// Storage 把底层存储的错误归类为 ErrStorage，已经归类过的错误原样返回
func Storage(err error) error {
	if err == nil ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

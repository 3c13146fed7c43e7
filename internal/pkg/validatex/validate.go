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

package validatex

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ecodeclub/hrhub/internal/pkg/bizerr"
	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

var messages = map[string]string{
	"required": "字段 '%s' 为必填项",
	"email":    "字段 '%s' 必须是有效的电子邮箱地址",
	"min":      "字段 '%s' 的长度不能少于 %s",
	"max":      "字段 '%s' 的长度不能超过 %s",
	"gte":      "字段 '%s' 的值必须大于或等于 %s",
	"lte":      "字段 '%s' 的值必须小于或等于 %s",
	"oneof":    "字段 '%s' 的值必须是 [%s] 之一",
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 报错的时候用 json 里面的名字，前端看得懂
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Struct 校验结构体，失败时返回 wrap 了 bizerr.ErrValidation 的错误
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", bizerr.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return bizerr.Validation("%s", strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	// 去掉最外层的结构体名字，保留 skills[0] 这种路径
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	msg, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("字段 '%s' 不合法: %s", field, fe.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, field, fe.Param())
	}
	return fmt.Sprintf(msg, field)
}

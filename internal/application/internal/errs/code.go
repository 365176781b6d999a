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

package errs

import "github.com/ecodeclub/campus/internal/pkg/bizerr"

var (
	InvalidInputError      = ErrorCode{Code: 413001, Msg: "非法输入"}
	UnauthorizedError      = ErrorCode{Code: 413002, Msg: "未登录"}
	ForbiddenError         = ErrorCode{Code: 413003, Msg: "没有权限"}
	NotFoundError          = ErrorCode{Code: 413004, Msg: "岗位或者申请不存在"}
	InvalidTransitionError = ErrorCode{Code: 413005, Msg: "申请已经处理过了"}

	SystemError = ErrorCode{Code: 513001, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

func CodeOf(kind bizerr.Kind) int {
	switch kind {
	case bizerr.KindValidation:
		return InvalidInputError.Code
	case bizerr.KindUnauthorized:
		return UnauthorizedError.Code
	case bizerr.KindForbidden:
		return ForbiddenError.Code
	case bizerr.KindNotFound:
		return NotFoundError.Code
	case bizerr.KindInvalidTransition:
		return InvalidTransitionError.Code
	default:
		return SystemError.Code
	}
}

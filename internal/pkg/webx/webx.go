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

package webx

import (
	"strconv"

	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

// CodeFunc 把错误类别翻译成模块自己的业务错误码
type CodeFunc func(kind bizerr.Kind) int

// Abort 按照错误类别写回 HTTP 状态码以及 ginx.Result，
// 返回 ginx.ErrNoResponse 让 ginx 不再重复写响应
func Abort(ctx *ginx.Context, err error, codeOf CodeFunc) (ginx.Result, error) {
	kind := bizerr.KindOf(err)
	res := ginx.Result{Code: codeOf(kind), Msg: bizerr.Message(err)}
	status := kind.StatusCode()
	if status >= 500 {
		elog.DefaultLogger.Error("处理请求失败",
			elog.FieldErr(err),
			elog.String("path", ctx.Request.URL.Path),
			elog.String("method", ctx.Request.Method))
	}
	ctx.AbortWithStatusJSON(status, res)
	return res, ginx.ErrNoResponse
}

// ParamInt64 读取路径参数，非法时返回 ValidationError
func ParamInt64(ctx *ginx.Context, key string) (int64, error) {
	val, err := strconv.ParseInt(ctx.Context.Param(key), 10, 64)
	if err != nil || val <= 0 {
		return 0, bizerr.Validation("invalid " + key)
	}
	return val, nil
}

// Page 读取分页参数，limit 限制在 (0, maxLimit]
func Page(ctx *ginx.Context, defaultLimit, maxLimit int) (offset int, limit int) {
	offset, _ = strconv.Atoi(ctx.Context.Query("offset"))
	limit, _ = strconv.Atoi(ctx.Context.Query("limit"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

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

// Package bizerr 定义了跨模块共享的业务错误分类。
// 各个模块自己的 internal/errs 依旧负责业务错误码，这里只关心错误属于哪一类，
// 以及这一类错误对外应该暴露什么 HTTP 状态码。
package bizerr

import (
	"errors"
	"net/http"
)

type Kind uint8

const (
	// KindUnknown 没有被分类的错误，一律当成系统错误
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindStorage
	KindInvalidTransition
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindStorage:
		return "StorageError"
	case KindInvalidTransition:
		return "InvalidTransition"
	default:
		return "Unknown"
	}
}

// StatusCode 是该类错误对应的 HTTP 状态码
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// 哨兵错误，只用于 errors.Is 判定类别
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrStorage           = &Error{Kind: KindStorage}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
)

// Error 是带分类的业务错误。
// Msg 会原样返回给调用方，所以不要放内部细节，内部细节放在 Cause 里。
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 同一类别即视为相等，这样 errors.Is(err, ErrNotFound) 能匹配所有 NotFound
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func Validation(msg string) error {
	return New(KindValidation, msg)
}

func Unauthorized(msg string) error {
	return New(KindUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

func InvalidTransition(msg string) error {
	return New(KindInvalidTransition, msg)
}

func Storage(msg string, cause error) error {
	return Wrap(KindStorage, msg, cause)
}

// KindOf 返回错误链上最外层的业务错误类别
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message 返回可以直接展示给调用方的信息，未分类的错误不暴露细节
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindUnknown && e.Kind != KindStorage {
		if e.Msg != "" {
			return e.Msg
		}
		return e.Kind.String()
	}
	return "internal error"
}

// StatusCode 是 KindOf(err).StatusCode() 的简写
func StatusCode(err error) int {
	return KindOf(err).StatusCode()
}

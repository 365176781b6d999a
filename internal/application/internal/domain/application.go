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

package domain

import "io"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// Terminal accepted 和 rejected 之后不允许再流转
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitTo 只允许 pending -> accepted 或者 pending -> rejected
func (s Status) CanTransitTo(next Status) bool {
	return s == StatusPending && next.Terminal()
}

// Submitter 是申请人，只有 AnonymousContact 和 AuthenticatedUser 两种
type Submitter interface {
	submitter()
}

// AnonymousContact 没有登录，直接在表单里面填写联系方式
type AnonymousContact struct {
	Name   string
	Email  string
	Mobile string
}

func (AnonymousContact) submitter() {}

// AuthenticatedUser 已经登录的用户，联系方式从用户资料里面查
type AuthenticatedUser struct {
	Uid int64
}

func (AuthenticatedUser) submitter() {}

type Application struct {
	ID        int64
	PostID    int64
	Submitter Submitter
	// ResumeURL 创建之后不可修改
	ResumeURL string
	Status    Status
	Ctime     int64
	Utime     int64
}

// Uid 匿名申请返回 0
func (a Application) Uid() int64 {
	if u, ok := a.Submitter.(AuthenticatedUser); ok {
		return u.Uid
	}
	return 0
}

// Summary 带上了岗位信息以及申请人邮箱的申请。
// 岗位被删除之后 PostTitle 和 PostType 都为空
type Summary struct {
	Application
	PostTitle      string
	PostType       string
	ApplicantEmail string
}

type Resume struct {
	Filename string
	// ContentType 客户端声明的类型，可能为空，也可能是假的
	ContentType string
	Size        int64
	Content     io.Reader
}

type Submission struct {
	PostID    int64
	Resume    Resume
	Submitter Submitter
}

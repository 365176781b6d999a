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

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type Profile struct {
	ID int64
	// Email 来自登录体系，这里只是冗余一份方便查询
	Email    string
	FullName string
	Mobile   string
	Role     Role
	Ctime    int64
	Utime    int64
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Identity 是当前调用者的身份，Uid 为 0 代表匿名
type Identity struct {
	Uid   int64
	Email string
}

func (i Identity) Anonymous() bool {
	return i.Uid <= 0
}

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

import "github.com/ecodeclub/campus/internal/profile/internal/domain"

type Profile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Mobile:   p.Mobile,
		Role:     p.Role.String(),
	}
}

type SaveReq struct {
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
}

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

type Type string

const (
	TypeResearch Type = "research"
	TypeClub     Type = "club"
	TypeEvent    Type = "event"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) Valid() bool {
	switch t {
	case TypeResearch, TypeClub, TypeEvent:
		return true
	default:
		return false
	}
}

// AcceptThumbnail 只有活动类型才有封面
func (t Type) AcceptThumbnail() bool {
	return t == TypeEvent
}

type Post struct {
	ID          int64
	Title       string
	Description string
	Type        Type
	// ThumbnailURL 只在 Type 为 event 的时候有意义
	ThumbnailURL string
	Ctime        int64
	Utime        int64
}

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

import "github.com/ecodeclub/campus/internal/post/internal/domain"

type Post struct {
	ID           int64  `json:"id,string"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}

func newPost(p domain.Post) Post {
	return Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Type:         p.Type.String(),
		ThumbnailURL: p.ThumbnailURL,
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}

type ListPostsResp struct {
	Total int64  `json:"total"`
	Posts []Post `json:"posts"`
}

type SavePostReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (r SavePostReq) toDomain(id int64) domain.Post {
	return domain.Post{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		Type:         domain.Type(r.Type),
		ThumbnailURL: r.ThumbnailURL,
	}
}

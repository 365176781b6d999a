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

import "github.com/ecodeclub/campus/internal/application/internal/domain"

type SubmitResp struct {
	ID      int64 `json:"id,string"`
	Success bool  `json:"success"`
}

type SetStatusReq struct {
	Status string `json:"status"`
}

type Application struct {
	ID            int64  `json:"id,string"`
	PostID        int64  `json:"postId,string"`
	PostTitle     string `json:"postTitle"`
	PostType      string `json:"postType"`
	StudentID     int64  `json:"studentId,omitempty"`
	StudentName   string `json:"studentName,omitempty"`
	StudentEmail  string `json:"studentEmail"`
	StudentMobile string `json:"studentMobile,omitempty"`
	ResumeURL     string `json:"resumeUrl"`
	Status        string `json:"status"`
	Ctime         int64  `json:"ctime"`
	Utime         int64  `json:"utime"`
}

func newApplication(s domain.Summary) Application {
	res := Application{
		ID:           s.ID,
		PostID:       s.PostID,
		PostTitle:    s.PostTitle,
		PostType:     s.PostType,
		StudentEmail: s.ApplicantEmail,
		ResumeURL:    s.ResumeURL,
		Status:       s.Status.String(),
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
	switch sub := s.Submitter.(type) {
	case domain.AnonymousContact:
		res.StudentName = sub.Name
		res.StudentMobile = sub.Mobile
	case domain.AuthenticatedUser:
		res.StudentID = sub.Uid
	}
	return res
}

type ListApplicationsResp struct {
	Total        int64         `json:"total"`
	Applications []Application `json:"applications"`
}

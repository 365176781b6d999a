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

package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/application"
	appmocks "github.com/ecodeclub/campus/internal/application/mocks"
	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFormatApplication(t *testing.T) {
	testCases := []struct {
		name string
		sum  application.Summary
		want string
	}{
		{
			name: "匿名申请",
			sum: application.Summary{
				Application: application.Application{
					ID:        1,
					Submitter: application.AnonymousContact{Name: "Jane", Email: "jane@x.edu", Mobile: "123"},
					ResumeURL: "http://files/resumes/1-a.pdf",
				},
				PostTitle:      "AI Lab",
				ApplicantEmail: "jane@x.edu",
			},
			want: "📥 *New Application*\n\n📌 *AI Lab*\n🧑 Student: Jane (123)\n📧 jane@x.edu\n\n📄 Resume:\nhttp://files/resumes/1-a.pdf",
		},
		{
			name: "登录用户，岗位已经删除，没有邮箱",
			sum: application.Summary{
				Application: application.Application{
					ID:        2,
					Submitter: application.AuthenticatedUser{Uid: 9},
					ResumeURL: "http://files/resumes/2-b.pdf",
				},
			},
			want: "📥 *New Application*\n\n📌 *Opportunity*\n🧑 Student ID: 9\n📧 —\n\n📄 Resume:\nhttp://files/resumes/2-b.pdf",
		},
		{
			name: "转义 Markdown",
			sum: application.Summary{
				Application: application.Application{
					Submitter: application.AnonymousContact{Name: "jane_doe*"},
					ResumeURL: "http://files/resumes/3_c.pdf",
				},
				PostTitle:      "[AI] Lab",
				ApplicantEmail: "jane_doe@x.edu",
			},
			want: "📥 *New Application*\n\n📌 *\\[AI] Lab*\n🧑 Student: jane\\_doe\\*\n📧 jane\\_doe@x.edu\n\n📄 Resume:\nhttp://files/resumes/3\\_c.pdf",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatApplication(tc.sum))
		})
	}
}

type capturedRequest struct {
	path string
	body sendMessageReq
}

func newTelegramServer(t *testing.T, status int) (*httptest.Server, chan capturedRequest) {
	ch := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body sendMessageReq
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		ch <- capturedRequest{path: r.URL.Path, body: body}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)
	return server, ch
}

func TestBotNotifier_Notify(t *testing.T) {
	sum := application.Summary{
		Application: application.Application{
			ID:        1,
			Submitter: application.AnonymousContact{Name: "Jane", Email: "jane@x.edu"},
			ResumeURL: "http://files/resumes/1-a.pdf",
		},
		PostTitle:      "AI Lab",
		ApplicantEmail: "jane@x.edu",
	}
	testCases := []struct {
		name    string
		status  int
		mock    func(ctrl *gomock.Controller) application.Service
		cfg     func(apiBase string) Config
		wantReq bool
		wantErr bool
	}{
		{
			name:   "发送成功",
			status: http.StatusOK,
			mock: func(ctrl *gomock.Controller) application.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(sum, nil)
				return svc
			},
			cfg: func(apiBase string) Config {
				return Config{Token: "tk", ChatID: "42", APIBase: apiBase}
			},
			wantReq: true,
		},
		{
			name:   "telegram 返回非 2xx",
			status: http.StatusBadRequest,
			mock: func(ctrl *gomock.Controller) application.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(sum, nil)
				return svc
			},
			cfg: func(apiBase string) Config {
				return Config{Token: "tk", ChatID: "42", APIBase: apiBase}
			},
			wantReq: true,
			wantErr: true,
		},
		{
			name:   "申请不存在",
			status: http.StatusOK,
			mock: func(ctrl *gomock.Controller) application.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(application.Summary{}, bizerr.NotFound("application not found"))
				return svc
			},
			cfg: func(apiBase string) Config {
				return Config{Token: "tk", ChatID: "42", APIBase: apiBase}
			},
			wantErr: true,
		},
		{
			name:   "没有配置",
			status: http.StatusOK,
			mock: func(ctrl *gomock.Controller) application.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(sum, nil)
				return svc
			},
			cfg: func(apiBase string) Config {
				return Config{APIBase: apiBase}
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server, ch := newTelegramServer(t, tc.status)
			n := NewBotNotifier(tc.cfg(server.URL), tc.mock(ctrl))
			err := n.Notify(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err != nil)
			if !tc.wantReq {
				assert.Len(t, ch, 0)
				return
			}
			req := <-ch
			assert.Equal(t, "/bottk/sendMessage", req.path)
			assert.Equal(t, sendMessageReq{
				ChatID:    "42",
				Text:      FormatApplication(sum),
				ParseMode: "Markdown",
			}, req.body)
		})
	}
}

func TestBotNotifier_Ping(t *testing.T) {
	server, ch := newTelegramServer(t, http.StatusOK)
	n := NewBotNotifier(Config{Token: "tk", ChatID: "42", APIBase: server.URL + "/"}, nil)
	require.NoError(t, n.Ping(context.Background()))
	req := <-ch
	assert.Equal(t, "/bottk/sendMessage", req.path)
	assert.Equal(t, sendMessageReq{ChatID: "42", Text: pingMessage}, req.body)
}

func TestBotNotifier_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()
	n := NewBotNotifier(Config{Token: "secret-token", ChatID: "42", APIBase: server.URL, Timeout: 50 * time.Millisecond}, nil)
	err := n.Ping(context.Background())
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "secret-token"))
}

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

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/service"
	appmocks "github.com/ecodeclub/campus/internal/application/mocks"
	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/campus/internal/test"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedResolver profile.Identity

func (r fixedResolver) Resolve(_ *ginx.Context) profile.Identity {
	return profile.Identity(r)
}

var pdfContent = append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{'a'}, 1024)...)

func newApplyRequest(t *testing.T, fields map[string]string, fileType string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if content != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="resume"; filename="cv.pdf"`)
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, "/apply", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      service.Config
		identity profile.Identity
		mock     func(ctrl *gomock.Controller) service.Service
		req      func(t *testing.T) *http.Request
		wantCode int
		wantResp test.Result[SubmitResp]
	}{
		{
			name: "匿名申请",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sub domain.Submission) (int64, error) {
						assert.Equal(t, int64(100), sub.PostID)
						assert.Equal(t, domain.AnonymousContact{Name: "Jane", Email: "jane@x.edu"}, sub.Submitter)
						assert.Equal(t, "application/pdf", sub.Resume.ContentType)
						assert.Equal(t, int64(len(pdfContent)), sub.Resume.Size)
						data, err := io.ReadAll(sub.Resume.Content)
						require.NoError(t, err)
						assert.Equal(t, pdfContent, data)
						return 200, nil
					})
				return svc
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{
					"post_id": "100",
					"name":    "Jane",
					"email":   "jane@x.edu",
				}, "application/pdf", pdfContent)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[SubmitResp]{Msg: "OK", Data: SubmitResp{ID: 200, Success: true}},
		},
		{
			name:     "登录用户忽略表单里的联系方式",
			identity: profile.Identity{Uid: 2, Email: "bob@x.edu"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sub domain.Submission) (int64, error) {
						assert.Equal(t, domain.AuthenticatedUser{Uid: 2}, sub.Submitter)
						return 201, nil
					})
				return svc
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{
					"post_id": "100",
					"name":    "Jane",
				}, "application/pdf", pdfContent)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[SubmitResp]{Msg: "OK", Data: SubmitResp{ID: 201, Success: true}},
		},
		{
			name: "没有联系方式",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sub domain.Submission) (int64, error) {
						assert.Nil(t, sub.Submitter)
						return 0, bizerr.Unauthorized("login required")
					})
				return svc
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{"post_id": "100"}, "application/pdf", pdfContent)
			},
			wantCode: http.StatusUnauthorized,
			wantResp: test.Result[SubmitResp]{Code: 413002, Msg: "login required"},
		},
		{
			name: "校验失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(int64(0), bizerr.Validation("resume must be a PDF"))
				return svc
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{
					"post_id": "100",
					"name":    "Jane",
					"email":   "jane@x.edu",
				}, "image/png", []byte("png"))
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[SubmitResp]{Code: 413001, Msg: "resume must be a PDF"},
		},
		{
			name: "存储失败不暴露细节",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(int64(0), bizerr.Storage("上传简历失败", io.ErrUnexpectedEOF))
				return svc
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{
					"post_id": "100",
					"name":    "Jane",
					"email":   "jane@x.edu",
				}, "application/pdf", pdfContent)
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[SubmitResp]{Code: 513001, Msg: "internal error"},
		},
		{
			name: "请求体过大",
			cfg:  service.Config{MaxResumeSize: 1024},
			mock: func(ctrl *gomock.Controller) service.Service {
				return appmocks.NewMockService(ctrl)
			},
			req: func(t *testing.T) *http.Request {
				return newApplyRequest(t, map[string]string{"post_id": "100"},
					"application/pdf", bytes.Repeat([]byte{'a'}, 2<<20))
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[SubmitResp]{Code: 413001, Msg: "resume is too large"},
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewHandler(tc.mock(ctrl), fixedResolver(tc.identity), tc.cfg)
			server := gin.New()
			hdl.PublicRoutes(server)
			recorder := test.NewJSONResponseRecorder[SubmitResp]()
			server.ServeHTTP(recorder, tc.req(t))
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func newAdminServer(svc service.Service, uid int64) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	})
	NewAdminHandler(svc).PrivateRoutes(server)
	return server
}

func TestAdminHandler_SetStatus(t *testing.T) {
	testCases := []struct {
		name     string
		uid      int64
		path     string
		body     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name: "接受",
			uid:  1,
			path: "/applications/200",
			body: `{"status":"accepted"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().SetStatus(gomock.Any(), int64(1), int64(200), domain.StatusAccepted).Return(nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[any]{Msg: "OK"},
		},
		{
			name: "非管理员拿到 403，即使请求非法",
			uid:  2,
			path: "/applications/abc",
			body: `not json`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().SetStatus(gomock.Any(), int64(2), int64(0), domain.Status("")).
					Return(bizerr.Forbidden("admin only"))
				return svc
			},
			wantCode: http.StatusForbidden,
			wantResp: test.Result[any]{Code: 413003, Msg: "admin only"},
		},
		{
			name: "已经处理过",
			uid:  1,
			path: "/applications/200",
			body: `{"status":"rejected"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().SetStatus(gomock.Any(), int64(1), int64(200), domain.StatusRejected).
					Return(bizerr.InvalidTransition("application is already accepted"))
				return svc
			},
			wantCode: http.StatusConflict,
			wantResp: test.Result[any]{Code: 413005, Msg: "application is already accepted"},
		},
		{
			name: "申请不存在",
			uid:  1,
			path: "/applications/404",
			body: `{"status":"rejected"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().SetStatus(gomock.Any(), int64(1), int64(404), domain.StatusRejected).
					Return(bizerr.NotFound("application not found"))
				return svc
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[any]{Code: 413004, Msg: "application not found"},
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newAdminServer(tc.mock(ctrl), tc.uid)
			req, err := http.NewRequest(http.MethodPatch, tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := appmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), int64(1), 0, 0).Return([]domain.Summary{
		{
			Application: domain.Application{
				ID:        3,
				PostID:    10,
				Submitter: domain.AnonymousContact{Name: "Jane", Email: "jane@x.edu", Mobile: "123"},
				ResumeURL: "http://files/a.pdf",
				Status:    domain.StatusPending,
				Ctime:     30,
				Utime:     30,
			},
			PostTitle:      "AI Lab",
			PostType:       "research",
			ApplicantEmail: "jane@x.edu",
		},
		{
			Application: domain.Application{
				ID:        2,
				PostID:    11,
				Submitter: domain.AuthenticatedUser{Uid: 9},
				ResumeURL: "http://files/b.pdf",
				Status:    domain.StatusRejected,
				Ctime:     20,
				Utime:     25,
			},
		},
	}, int64(2), nil)
	svc.EXPECT().List(gomock.Any(), int64(2), 0, 0).
		Return(nil, int64(0), bizerr.Forbidden("admin only"))

	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodGet, "/applications", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ListApplicationsResp]()
	newAdminServer(svc, 1).ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ListApplicationsResp{
		Total: 2,
		Applications: []Application{
			{
				ID: 3, PostID: 10, PostTitle: "AI Lab", PostType: "research",
				StudentName: "Jane", StudentEmail: "jane@x.edu", StudentMobile: "123",
				ResumeURL: "http://files/a.pdf", Status: "pending", Ctime: 30, Utime: 30,
			},
			{
				ID: 2, PostID: 11, StudentID: 9,
				ResumeURL: "http://files/b.pdf", Status: "rejected", Ctime: 20, Utime: 25,
			},
		},
	}, recorder.MustScan().Data)

	req, err = http.NewRequest(http.MethodGet, "/applications", nil)
	require.NoError(t, err)
	forbidden := test.NewJSONResponseRecorder[ListApplicationsResp]()
	newAdminServer(svc, 2).ServeHTTP(forbidden, req)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}

func TestAdminHandler_List_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := appmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), int64(1), 20, maxPageSize).Return([]domain.Summary{}, int64(230), nil)

	req, err := http.NewRequest(http.MethodGet, "/applications?offset=20&limit=1000", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ListApplicationsResp]()
	newAdminServer(svc, 1).ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(230), recorder.MustScan().Data.Total)
}

func TestHandler_ListMine(t *testing.T) {
	testCases := []struct {
		name     string
		uid      int64
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp ListApplicationsResp
	}{
		{
			name: "岗位已删除的申请标题为空",
			uid:  9,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().ListMine(gomock.Any(), int64(9)).Return([]domain.Summary{
					{
						Application: domain.Application{
							ID: 5, PostID: 10, Submitter: domain.AuthenticatedUser{Uid: 9},
							ResumeURL: "http://files/a.pdf", Status: domain.StatusAccepted, Ctime: 50, Utime: 60,
						},
						PostTitle:      "AI Lab",
						PostType:       "research",
						ApplicantEmail: "bob@x.edu",
					},
					{
						Application: domain.Application{
							ID: 4, PostID: 11, Submitter: domain.AuthenticatedUser{Uid: 9},
							ResumeURL: "http://files/b.pdf", Status: domain.StatusPending, Ctime: 40, Utime: 40,
						},
						ApplicantEmail: "bob@x.edu",
					},
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: ListApplicationsResp{
				Total: 2,
				Applications: []Application{
					{
						ID: 5, PostID: 10, PostTitle: "AI Lab", PostType: "research", StudentID: 9,
						StudentEmail: "bob@x.edu", ResumeURL: "http://files/a.pdf", Status: "accepted", Ctime: 50, Utime: 60,
					},
					{
						ID: 4, PostID: 11, StudentID: 9, StudentEmail: "bob@x.edu",
						ResumeURL: "http://files/b.pdf", Status: "pending", Ctime: 40, Utime: 40,
					},
				},
			},
		},
		{
			name: "没有登录",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := appmocks.NewMockService(ctrl)
				svc.EXPECT().ListMine(gomock.Any(), int64(0)).Return(nil, bizerr.Unauthorized("login required"))
				return svc
			},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: tc.uid}))
			})
			NewHandler(tc.mock(ctrl), fixedResolver{}, service.Config{}).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodGet, "/applications/mine", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[ListApplicationsResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan().Data)
		})
	}
}

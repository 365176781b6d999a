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
	"errors"
	"net/http"
	"testing"

	tgmocks "github.com/ecodeclub/campus/internal/notification/internal/telegram/mocks"
	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/profile"
	profilemocks "github.com/ecodeclub/campus/internal/profile/mocks"
	"github.com/ecodeclub/campus/internal/test"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Ping(t *testing.T) {
	testCases := []struct {
		name     string
		uid      int64
		mock     func(ctrl *gomock.Controller) (*tgmocks.MockNotifier, profile.Service)
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name: "发送成功",
			uid:  1,
			mock: func(ctrl *gomock.Controller) (*tgmocks.MockNotifier, profile.Service) {
				p := profilemocks.NewMockService(ctrl)
				p.EXPECT().CheckRole(gomock.Any(), int64(1), profile.RoleAdmin).Return(nil)
				n := tgmocks.NewMockNotifier(ctrl)
				n.EXPECT().Ping(gomock.Any()).Return(nil)
				return n, p
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[any]{Msg: "OK"},
		},
		{
			name: "学生不能发送",
			uid:  2,
			mock: func(ctrl *gomock.Controller) (*tgmocks.MockNotifier, profile.Service) {
				p := profilemocks.NewMockService(ctrl)
				p.EXPECT().CheckRole(gomock.Any(), int64(2), profile.RoleAdmin).
					Return(bizerr.Forbidden("admin only"))
				return tgmocks.NewMockNotifier(ctrl), p
			},
			wantCode: http.StatusForbidden,
			wantResp: test.Result[any]{Code: 414003, Msg: "admin only"},
		},
		{
			name: "telegram 不可用",
			uid:  1,
			mock: func(ctrl *gomock.Controller) (*tgmocks.MockNotifier, profile.Service) {
				p := profilemocks.NewMockService(ctrl)
				p.EXPECT().CheckRole(gomock.Any(), int64(1), profile.RoleAdmin).Return(nil)
				n := tgmocks.NewMockNotifier(ctrl)
				n.EXPECT().Ping(gomock.Any()).Return(errors.New("telegram down"))
				return n, p
			},
			wantCode: http.StatusBadGateway,
			wantResp: test.Result[any]{Code: 514002, Msg: "通知渠道不可用"},
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			n, p := tc.mock(ctrl)
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: tc.uid}))
			})
			NewAdminHandler(n, p).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/notification/ping", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

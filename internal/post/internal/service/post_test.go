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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/post/internal/domain"
	"github.com/ecodeclub/campus/internal/post/internal/repository"
	repomocks "github.com/ecodeclub/campus/internal/post/internal/repository/mocks"
	"github.com/ecodeclub/campus/internal/profile"
	profilemocks "github.com/ecodeclub/campus/internal/profile/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	adminUID   int64 = 1
	studentUID int64 = 2
)

func asAdmin(ctrl *gomock.Controller) profile.Service {
	svc := profilemocks.NewMockService(ctrl)
	svc.EXPECT().CheckRole(gomock.Any(), adminUID, profile.RoleAdmin).Return(nil)
	return svc
}

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service)
		actor   int64
		post    domain.Post
		wantID  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Post{
					Title:       "AI Lab",
					Description: "machine learning research",
					Type:        domain.TypeResearch,
				}).Return(int64(100), nil)
				return repo, asAdmin(ctrl)
			},
			actor: adminUID,
			post: domain.Post{
				Title:        "  AI Lab ",
				Description:  "machine learning research",
				Type:         domain.TypeResearch,
				ThumbnailURL: "http://img/ai.png",
			},
			wantID: 100,
		},
		{
			name: "活动保留封面",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Post{
					Title:        "Hackathon",
					Description:  "24h",
					Type:         domain.TypeEvent,
					ThumbnailURL: "http://img/h.png",
				}).Return(int64(101), nil)
				return repo, asAdmin(ctrl)
			},
			actor: adminUID,
			post: domain.Post{
				Title:        "Hackathon",
				Description:  "24h",
				Type:         domain.TypeEvent,
				ThumbnailURL: "http://img/h.png",
			},
			wantID: 101,
		},
		{
			name: "学生没有权限",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				svc := profilemocks.NewMockService(ctrl)
				svc.EXPECT().CheckRole(gomock.Any(), studentUID, profile.RoleAdmin).
					Return(bizerr.Forbidden("Forbidden"))
				return repomocks.NewMockPostRepository(ctrl), svc
			},
			actor:   studentUID,
			post:    domain.Post{Title: "x", Description: "y", Type: domain.TypeClub},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "非法类型",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				return repomocks.NewMockPostRepository(ctrl), asAdmin(ctrl)
			},
			actor:   adminUID,
			post:    domain.Post{Title: "x", Description: "y", Type: "seminar"},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "缺少标题",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				return repomocks.NewMockPostRepository(ctrl), asAdmin(ctrl)
			},
			actor:   adminUID,
			post:    domain.Post{Title: "  ", Description: "y", Type: domain.TypeClub},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "更新不存在的岗位",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FreshByID(gomock.Any(), int64(9)).
					Return(domain.Post{}, repository.ErrPostNotFound)
				return repo, asAdmin(ctrl)
			},
			actor:   adminUID,
			post:    domain.Post{ID: 9, Title: "x", Description: "y", Type: domain.TypeClub},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "改成俱乐部清空封面",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FreshByID(gomock.Any(), int64(10)).
					Return(domain.Post{ID: 10, Type: domain.TypeEvent, ThumbnailURL: "http://img/a.png"}, nil)
				repo.EXPECT().Update(gomock.Any(), domain.Post{
					ID: 10, Title: "x", Description: "y", Type: domain.TypeClub,
				}).Return(nil)
				return repo, asAdmin(ctrl)
			},
			actor:  adminUID,
			post:   domain.Post{ID: 10, Title: "x", Description: "y", Type: domain.TypeClub, ThumbnailURL: "http://img/a.png"},
			wantID: 10,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo, asAdmin(ctrl)
			},
			actor:   adminUID,
			post:    domain.Post{Title: "x", Description: "y", Type: domain.TypeClub},
			wantErr: bizerr.ErrStorage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.actor, tc.post)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service)
		actor   int64
		id      int64
		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FreshByID(gomock.Any(), int64(1)).Return(domain.Post{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
				return repo, asAdmin(ctrl)
			},
			actor: adminUID,
			id:    1,
		},
		{
			name: "岗位不存在",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FreshByID(gomock.Any(), int64(2)).Return(domain.Post{}, repository.ErrPostNotFound)
				return repo, asAdmin(ctrl)
			},
			actor:   adminUID,
			id:      2,
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) (repository.PostRepository, profile.Service) {
				svc := profilemocks.NewMockService(ctrl)
				svc.EXPECT().CheckRole(gomock.Any(), int64(0), profile.RoleAdmin).
					Return(bizerr.Unauthorized("Unauthorized"))
				return repomocks.NewMockPostRepository(ctrl), svc
			},
			id:      1,
			wantErr: bizerr.ErrUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Delete(context.Background(), tc.actor, tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), domain.TypeEvent, 0, 10).
		Return([]domain.Post{{ID: 2, Type: domain.TypeEvent}, {ID: 1, Type: domain.TypeEvent}}, nil)
	repo.EXPECT().Count(gomock.Any(), domain.TypeEvent).Return(int64(2), nil)
	svc := NewService(repo, profilemocks.NewMockService(ctrl))

	posts, total, err := svc.List(context.Background(), domain.TypeEvent, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, posts, 2)

	_, _, err = svc.List(context.Background(), "lecture", 0, 10)
	assert.ErrorIs(t, err, bizerr.ErrValidation)
}

func TestService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Post{ID: 1, Title: "AI Lab"}, nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Post{}, repository.ErrPostNotFound)
	repo.EXPECT().FreshByID(gomock.Any(), int64(3)).Return(domain.Post{}, errors.New("mock db error"))
	svc := NewService(repo, profilemocks.NewMockService(ctrl))

	p, err := svc.Detail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "AI Lab", p.Title)

	_, err = svc.Detail(context.Background(), 2)
	assert.ErrorIs(t, err, bizerr.ErrNotFound)

	_, err = svc.FreshDetail(context.Background(), 3)
	assert.ErrorIs(t, err, bizerr.ErrStorage)
}

func TestService_GetByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostRepository(ctrl)
	repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).
		Return([]domain.Post{{ID: 1, Title: "AI Lab"}}, nil)
	svc := NewService(repo, profilemocks.NewMockService(ctrl))

	res, err := svc.GetByIDs(context.Background(), []int64{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, map[int64]domain.Post{1: {ID: 1, Title: "AI Lab"}}, res)
}

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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"
	"time"

	"github.com/ecodeclub/campus/internal/application/internal/domain"
	"github.com/ecodeclub/campus/internal/application/internal/event"
	"github.com/ecodeclub/campus/internal/application/internal/repository"
	"github.com/ecodeclub/campus/internal/pkg/bizerr"
	"github.com/ecodeclub/campus/internal/pkg/objstore"
	"github.com/ecodeclub/campus/internal/post"
	"github.com/ecodeclub/campus/internal/profile"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

const pdfMIME = "application/pdf"

type Config struct {
	// RequireLogin 为 true 时拒绝匿名申请
	RequireLogin bool `yaml:"requireLogin"`
	// MaxResumeSize 单位字节
	MaxResumeSize int64 `yaml:"maxResumeSize"`
	// RemoteTimeout 每一次远程调用的超时时间
	RemoteTimeout time.Duration `yaml:"remoteTimeout"`
}

func DefaultConfig() Config {
	return Config{
		MaxResumeSize: 2 << 20,
		RemoteTimeout: 5 * time.Second,
	}
}

//go:generate mockgen -source=./application.go -package=appmocks -destination=../../mocks/application.mock.go Service
type Service interface {
	// Submit 成功之后返回申请 ID，通知失败不影响结果
	Submit(ctx context.Context, sub domain.Submission) (int64, error)
	// SetStatus 只允许 pending 流转到 accepted 或者 rejected
	SetStatus(ctx context.Context, actor int64, id int64, status domain.Status) error
	// List limit <= 0 时返回全部
	List(ctx context.Context, actor int64, offset, limit int) ([]domain.Summary, int64, error)
	// ListMine 登录用户查看自己提交过的申请，匿名申请无法归属到任何人
	ListMine(ctx context.Context, uid int64) ([]domain.Summary, error)
	// Detail 内部使用，不校验权限
	Detail(ctx context.Context, id int64) (domain.Summary, error)
}

type service struct {
	cfg        Config
	repo       repository.ApplicationRepository
	postSvc    post.Service
	profileSvc profile.Service
	store      objstore.Store
	producer   event.CreatedEventProducer
	resolver   ApplicantResolver
	logger     *elog.Component
}

func NewService(cfg Config,
	repo repository.ApplicationRepository,
	postSvc post.Service,
	profileSvc profile.Service,
	store objstore.Store,
	producer event.CreatedEventProducer,
	resolver ApplicantResolver) Service {
	def := DefaultConfig()
	if cfg.MaxResumeSize <= 0 {
		cfg.MaxResumeSize = def.MaxResumeSize
	}
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = def.RemoteTimeout
	}
	return &service{
		cfg:        cfg,
		repo:       repo,
		postSvc:    postSvc,
		profileSvc: profileSvc,
		store:      store,
		producer:   producer,
		resolver:   resolver,
		logger:     elog.DefaultLogger.With(elog.FieldComponentName("application.Service")),
	}
}

func (s *service) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	submitter, err := s.checkSubmitter(sub.Submitter)
	if err != nil {
		return 0, err
	}
	if sub.PostID <= 0 {
		return 0, bizerr.Validation("post_id is required")
	}
	if err = s.checkPost(ctx, sub.PostID); err != nil {
		return 0, err
	}
	data, err := s.readResume(sub.Resume)
	if err != nil {
		return 0, err
	}

	key := fmt.Sprintf("resumes/%d-%s.pdf", sub.PostID, shortuuid.New())
	url, err := s.upload(ctx, key, data)
	if err != nil {
		return 0, bizerr.Storage("上传简历失败", err)
	}

	id, err := s.create(ctx, domain.Application{
		PostID:    sub.PostID,
		Submitter: submitter,
		ResumeURL: url,
		Status:    domain.StatusPending,
	})
	if err != nil {
		// 简历已经上传，这里不回滚，留给离线清理
		s.logger.Error("保存申请失败，简历成为孤儿文件",
			elog.FieldErr(err), elog.String("resume", url))
		return 0, bizerr.Storage("保存申请失败", err)
	}
	s.notify(ctx, id)
	return id, nil
}

func (s *service) checkSubmitter(sub domain.Submitter) (domain.Submitter, error) {
	switch val := sub.(type) {
	case domain.AuthenticatedUser:
		if val.Uid > 0 {
			return val, nil
		}
	case domain.AnonymousContact:
		if s.cfg.RequireLogin {
			return nil, bizerr.Unauthorized("login required")
		}
		val.Name = strings.TrimSpace(val.Name)
		val.Email = strings.TrimSpace(val.Email)
		val.Mobile = strings.TrimSpace(val.Mobile)
		if val.Name == "" {
			return nil, bizerr.Validation("name is required")
		}
		if !validEmail(val.Email) {
			return nil, bizerr.Validation("a valid email is required")
		}
		return val, nil
	}
	if s.cfg.RequireLogin {
		return nil, bizerr.Unauthorized("login required")
	}
	return nil, bizerr.Validation("contact information is required")
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (s *service) checkPost(ctx context.Context, postID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	_, err := s.postSvc.FreshDetail(ctx, postID)
	return err
}

// readResume 在上传之前完成全部校验，内容整个读入内存，上限就是 MaxResumeSize
func (s *service) readResume(r domain.Resume) ([]byte, error) {
	tooLarge := bizerr.Validation(fmt.Sprintf("resume must not exceed %s", humanSize(s.cfg.MaxResumeSize)))
	if r.Content == nil {
		return nil, bizerr.Validation("resume is required")
	}
	if r.Size > s.cfg.MaxResumeSize {
		return nil, tooLarge
	}
	if r.ContentType != "" {
		mt, _, err := mime.ParseMediaType(r.ContentType)
		if err != nil || mt != pdfMIME {
			return nil, bizerr.Validation("resume must be a PDF")
		}
	}
	data, err := io.ReadAll(io.LimitReader(r.Content, s.cfg.MaxResumeSize+1))
	if err != nil {
		return nil, bizerr.Validation("failed to read resume")
	}
	switch {
	case int64(len(data)) > s.cfg.MaxResumeSize:
		return nil, tooLarge
	case len(data) == 0:
		return nil, bizerr.Validation("resume is empty")
	case !mimetype.Detect(data).Is(pdfMIME):
		return nil, bizerr.Validation("resume must be a PDF")
	}
	return data, nil
}

func humanSize(n int64) string {
	const mib = 1 << 20
	if n%mib == 0 {
		return fmt.Sprintf("%d MiB", n/mib)
	}
	return fmt.Sprintf("%d bytes", n)
}

func (s *service) upload(ctx context.Context, key string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	return s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), pdfMIME)
}

func (s *service) create(ctx context.Context, a domain.Application) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	return s.repo.Create(ctx, a)
}

// notify 只负责投递消息，失败只记录日志
func (s *service) notify(ctx context.Context, id int64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RemoteTimeout)
	defer cancel()
	err := s.producer.Produce(ctx, event.CreatedEvent{ApplicationID: id})
	if err != nil {
		s.logger.Error("发送申请创建事件失败",
			elog.FieldErr(err), elog.Int64("applicationId", id))
	}
}

func (s *service) SetStatus(ctx context.Context, actor int64, id int64, status domain.Status) error {
	if err := s.profileSvc.CheckRole(ctx, actor, profile.RoleAdmin); err != nil {
		return err
	}
	if !status.Terminal() {
		return bizerr.Validation("Invalid status")
	}
	if id <= 0 {
		return bizerr.NotFound("application not found")
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	ok, err := s.repo.TransitStatus(ctx, id, domain.StatusPending, status)
	if err != nil {
		return bizerr.Storage("更新申请状态失败", err)
	}
	if ok {
		return nil
	}
	a, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrApplicationNotFound):
		return bizerr.NotFound("application not found")
	case err != nil:
		return bizerr.Storage("查询申请失败", err)
	}
	return bizerr.InvalidTransition(fmt.Sprintf("application is already %s", a.Status))
}

func (s *service) List(ctx context.Context, actor int64, offset, limit int) ([]domain.Summary, int64, error) {
	if err := s.profileSvc.CheckRole(ctx, actor, profile.RoleAdmin); err != nil {
		return nil, 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, bizerr.Storage("查询申请列表失败", err)
	}
	res, err := s.denormalize(ctx, apps)
	return res, total, err
}

func (s *service) ListMine(ctx context.Context, uid int64) ([]domain.Summary, error) {
	if uid <= 0 {
		return nil, bizerr.Unauthorized("login required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	apps, err := s.repo.ListByUid(ctx, uid)
	if err != nil {
		return nil, bizerr.Storage("查询我的申请失败", err)
	}
	return s.denormalize(ctx, apps)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()
	a, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrApplicationNotFound):
		return domain.Summary{}, bizerr.NotFound("application not found")
	case err != nil:
		return domain.Summary{}, bizerr.Storage("查询申请失败", err)
	}
	res, err := s.denormalize(ctx, []domain.Application{a})
	if err != nil {
		return domain.Summary{}, err
	}
	return res[0], nil
}

// denormalize 补充岗位标题和申请人邮箱。
// 岗位已经删除时标题和类型为空；邮箱查不到只记录日志
func (s *service) denormalize(ctx context.Context, apps []domain.Application) ([]domain.Summary, error) {
	if len(apps) == 0 {
		return []domain.Summary{}, nil
	}
	var (
		eg     errgroup.Group
		posts  map[int64]post.Post
		emails map[int64]string
	)
	eg.Go(func() error {
		postIDs := slice.Map(apps, func(idx int, src domain.Application) int64 {
			return src.PostID
		})
		var err error
		posts, err = s.postSvc.GetByIDs(ctx, postIDs)
		return err
	})
	eg.Go(func() error {
		uids := make([]int64, 0, len(apps))
		for _, a := range apps {
			if uid := a.Uid(); uid > 0 {
				uids = append(uids, uid)
			}
		}
		var err error
		emails, err = s.resolver.Emails(ctx, uids)
		if err != nil {
			s.logger.Warn("查询申请人邮箱失败", elog.FieldErr(err))
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src domain.Application) domain.Summary {
		res := domain.Summary{Application: src}
		if p, ok := posts[src.PostID]; ok {
			res.PostTitle = p.Title
			res.PostType = string(p.Type)
		}
		switch sub := src.Submitter.(type) {
		case domain.AnonymousContact:
			res.ApplicantEmail = sub.Email
		case domain.AuthenticatedUser:
			res.ApplicantEmail = emails[sub.Uid]
		}
		return res
	}), nil
}

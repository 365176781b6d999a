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

	"github.com/ecodeclub/campus/internal/profile"
)

// ApplicantResolver 查询已登录申请人的邮箱，查不到的 uid 不会出现在结果里
type ApplicantResolver interface {
	Emails(ctx context.Context, uids []int64) (map[int64]string, error)
}

// BatchApplicantResolver 一次查询全部
type BatchApplicantResolver struct {
	svc profile.Service
}

func NewBatchApplicantResolver(svc profile.Service) ApplicantResolver {
	return &BatchApplicantResolver{svc: svc}
}

func (r *BatchApplicantResolver) Emails(ctx context.Context, uids []int64) (map[int64]string, error) {
	res := make(map[int64]string, len(uids))
	if len(uids) == 0 {
		return res, nil
	}
	ps, err := r.svc.BatchProfiles(ctx, uids)
	if err != nil {
		return res, err
	}
	for uid, p := range ps {
		res[uid] = p.Email
	}
	return res, nil
}

// PerRowApplicantResolver 每个 uid 查询一次，只适合数据量很小的场景
type PerRowApplicantResolver struct {
	svc profile.Service
}

func NewPerRowApplicantResolver(svc profile.Service) ApplicantResolver {
	return &PerRowApplicantResolver{svc: svc}
}

func (r *PerRowApplicantResolver) Emails(ctx context.Context, uids []int64) (map[int64]string, error) {
	res := make(map[int64]string, len(uids))
	var lastErr error
	for _, uid := range uids {
		if _, ok := res[uid]; ok {
			continue
		}
		p, err := r.svc.Profile(ctx, uid)
		if err != nil {
			lastErr = err
			continue
		}
		res[uid] = p.Email
	}
	return res, lastErr
}

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

package objstore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store 兼容 S3 协议的对象存储，包括 R2、MinIO 以及腾讯云 COS 的 S3 接口
type S3Store struct {
	uploader  *s3manager.Uploader
	bucket    string
	baseURL   string
	publicACL bool
}

func NewS3Store(cfg S3Config, baseURL string) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("未配置 bucket")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	awsCfg := &aws.Config{
		Region:           aws.String(region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("创建 S3 session 失败: %w", err)
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s/%s", cfg.Endpoint, cfg.Bucket)
	}
	return &S3Store{
		uploader:  s3manager.NewUploader(sess),
		bucket:    cfg.Bucket,
		baseURL:   baseURL,
		publicACL: cfg.PublicACL,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	}
	if s.publicACL {
		input.ACL = aws.String("public-read")
	}
	if _, err := s.uploader.UploadWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("上传到 bucket %s 失败: %w", s.bucket, err)
	}
	return joinURL(s.baseURL, key), nil
}

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

// Package objstore 存放简历这类二进制文件，并返回可以公开访问的 URL
package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -source=./store.go -package=objmocks -destination=./mocks/store.mock.go Store
type Store interface {
	// Put 将 r 中的内容写到 key 上，返回可以公开访问的 URL。
	// 调用方负责保证 key 不会和其他对象冲突
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

type Config struct {
	// Driver local 或者 s3
	Driver string `yaml:"driver"`
	// BaseURL 拼接对象 URL 的前缀
	BaseURL string `yaml:"baseURL"`
	Local   struct {
		Root string `yaml:"root"`
	} `yaml:"local"`
	S3 S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	PublicACL bool   `yaml:"publicACL"`
}

func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Local.Root, cfg.BaseURL)
	case "s3":
		return NewS3Store(cfg.S3, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("未知的对象存储驱动: %s", cfg.Driver)
	}
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

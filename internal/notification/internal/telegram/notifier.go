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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecodeclub/campus/internal/application"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	pingMessage    = "✅ Telegram test successful!\nFaculty Management System is connected."
)

var ErrNotConfigured = errors.New("telegram bot token 或者 chat id 没有配置")

var sentCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campus",
	Subsystem: "notification",
	Name:      "telegram_messages_total",
	Help:      "发往 telegram 的消息数量",
}, []string{"result"})

type Config struct {
	Token   string        `yaml:"token"`
	ChatID  string        `yaml:"chatID"`
	APIBase string        `yaml:"apiBase"`
	Timeout time.Duration `yaml:"timeout"`
}

//go:generate mockgen -source=./notifier.go -package=tgmocks -destination=./mocks/notifier.mock.go Notifier
type Notifier interface {
	// Notify 把申请推送到群里，失败只返回错误，不重试
	Notify(ctx context.Context, applicationID int64) error
	// Ping 发送一条测试消息，确认配置可用
	Ping(ctx context.Context) error
}

type BotNotifier struct {
	cfg    Config
	appSvc application.Service
	client *http.Client
}

func NewBotNotifier(cfg Config, appSvc application.Service) *BotNotifier {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &BotNotifier{
		cfg:    cfg,
		appSvc: appSvc,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (n *BotNotifier) Notify(ctx context.Context, applicationID int64) error {
	sum, err := n.appSvc.Detail(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("查询申请失败 id=%d: %w", applicationID, err)
	}
	return n.send(ctx, sendMessageReq{
		ChatID:    n.cfg.ChatID,
		Text:      FormatApplication(sum),
		ParseMode: "Markdown",
	})
}

func (n *BotNotifier) Ping(ctx context.Context) error {
	return n.send(ctx, sendMessageReq{ChatID: n.cfg.ChatID, Text: pingMessage})
}

type sendMessageReq struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (n *BotNotifier) send(ctx context.Context, msg sendMessageReq) (err error) {
	defer func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		sentCounter.WithLabelValues(result).Inc()
	}()
	if n.cfg.Token == "" || n.cfg.ChatID == "" {
		return ErrNotConfigured
	}
	data, err := json.Marshal(&msg)
	if err != nil {
		return fmt.Errorf("序列化 telegram 消息失败: %w", err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(n.cfg.APIBase, "/"), n.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		// url.Error 里面带着 token，只保留底层错误
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("向 telegram 发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram 处理请求失败: %s %s", resp.Status, body)
	}
	return nil
}

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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/campus/internal/application"
	"github.com/ecodeclub/campus/internal/notification/internal/telegram"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const groupID = "notification.telegram"

// ApplicationEventConsumer 消费申请创建事件并推送到 telegram。
// 推送失败只记录日志，消息不会重新投递
type ApplicationEventConsumer struct {
	consumer mq.Consumer
	notifier telegram.Notifier
	timeout  time.Duration
	logger   *elog.Component
}

func NewApplicationEventConsumer(q mq.MQ, notifier telegram.Notifier, timeout time.Duration) (*ApplicationEventConsumer, error) {
	c, err := q.Consumer(application.CreatedEventName, groupID)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ApplicationEventConsumer{
		consumer: c,
		notifier: notifier,
		timeout:  timeout,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.telegram.consumer")),
	}, nil
}

func (c *ApplicationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费申请创建事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt application.CreatedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	nctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err = c.notifier.Notify(nctx, evt.ApplicationID)
	if err != nil {
		return fmt.Errorf("推送申请通知失败 id=%d: %w", evt.ApplicationID, err)
	}
	return nil
}

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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/campus/internal/application"
	tgmocks "github.com/ecodeclub/campus/internal/notification/internal/telegram/mocks"
	"github.com/ecodeclub/campus/internal/test/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewApplicationEventConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Consumer(application.CreatedEventName, groupID).Return(nil, errors.New("mock error"))
	_, err := NewApplicationEventConsumer(q, tgmocks.NewMockNotifier(ctrl), time.Second)
	assert.Error(t, err)
}

func TestApplicationEventConsumer_Consume(t *testing.T) {
	evt, err := json.Marshal(application.CreatedEvent{ApplicationID: 200})
	require.NoError(t, err)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (mq.Consumer, *tgmocks.MockNotifier)
		wantErr bool
	}{
		{
			name: "推送成功",
			mock: func(ctrl *gomock.Controller) (mq.Consumer, *tgmocks.MockNotifier) {
				c := mocks.NewMockConsumer(ctrl)
				c.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: evt}, nil)
				n := tgmocks.NewMockNotifier(ctrl)
				n.EXPECT().Notify(gomock.Any(), int64(200)).Return(nil)
				return c, n
			},
		},
		{
			name: "推送失败",
			mock: func(ctrl *gomock.Controller) (mq.Consumer, *tgmocks.MockNotifier) {
				c := mocks.NewMockConsumer(ctrl)
				c.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: evt}, nil)
				n := tgmocks.NewMockNotifier(ctrl)
				n.EXPECT().Notify(gomock.Any(), int64(200)).Return(errors.New("telegram down"))
				return c, n
			},
			wantErr: true,
		},
		{
			name: "消息非法",
			mock: func(ctrl *gomock.Controller) (mq.Consumer, *tgmocks.MockNotifier) {
				c := mocks.NewMockConsumer(ctrl)
				c.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: []byte("not json")}, nil)
				return c, tgmocks.NewMockNotifier(ctrl)
			},
			wantErr: true,
		},
		{
			name: "获取消息失败",
			mock: func(ctrl *gomock.Controller) (mq.Consumer, *tgmocks.MockNotifier) {
				c := mocks.NewMockConsumer(ctrl)
				c.EXPECT().Consume(gomock.Any()).Return(nil, errors.New("mq down"))
				return c, tgmocks.NewMockNotifier(ctrl)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, n := tc.mock(ctrl)
			q := mocks.NewMockMQ(ctrl)
			q.EXPECT().Consumer(application.CreatedEventName, groupID).Return(c, nil)
			consumer, err := NewApplicationEventConsumer(q, n, time.Second)
			require.NoError(t, err)
			err = consumer.Consume(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

// 通知失败不会让消费循环退出，ctx 取消之后才退出
func TestApplicationEventConsumer_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	evt, err := json.Marshal(application.CreatedEvent{ApplicationID: 200})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c := mocks.NewMockConsumer(ctrl)
	c.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: evt}, nil).Times(2)
	c.EXPECT().Consume(gomock.Any()).DoAndReturn(func(ctx context.Context) (*mq.Message, error) {
		cancel()
		close(done)
		return nil, context.Canceled
	})
	n := tgmocks.NewMockNotifier(ctrl)
	n.EXPECT().Notify(gomock.Any(), int64(200)).Return(errors.New("telegram down"))
	n.EXPECT().Notify(gomock.Any(), int64(200)).Return(nil)
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Consumer(application.CreatedEventName, groupID).Return(c, nil)

	consumer, err := NewApplicationEventConsumer(q, n, time.Second)
	require.NoError(t, err)
	consumer.Start(ctx)
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("消费循环没有继续")
	}
}

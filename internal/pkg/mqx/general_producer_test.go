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

package mqx

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/campus/internal/test/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEvent struct {
	ID int64 `json:"id"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) mq.MQ
		wantErr bool
	}{
		{
			name: "发送成功",
			mock: func(ctrl *gomock.Controller) mq.MQ {
				p := mocks.NewMockProducer(ctrl)
				p.EXPECT().Produce(gomock.Any(), &mq.Message{Topic: "test_events", Value: []byte(`{"id":1}`)}).
					Return(&mq.ProducerResult{}, nil)
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Producer("test_events").Return(p, nil)
				return q
			},
		},
		{
			name: "发送失败",
			mock: func(ctrl *gomock.Controller) mq.MQ {
				p := mocks.NewMockProducer(ctrl)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil, errors.New("mq down"))
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Producer("test_events").Return(p, nil)
				return q
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p, err := NewGeneralProducer[testEvent](tc.mock(ctrl), "test_events")
			require.NoError(t, err)
			err = p.Produce(context.Background(), testEvent{ID: 1})
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestNewGeneralProducer_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Producer("test_events").Return(nil, errors.New("no topic"))
	_, err := NewGeneralProducer[testEvent](q, "test_events")
	assert.Error(t, err)
}

func TestTraceMQ_Producer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p := mocks.NewMockProducer(ctrl)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(&mq.ProducerResult{}, nil)
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Producer("test_events").Return(p, nil)

	producer, err := NewGeneralProducer[testEvent](NewTraceMQ(q), "test_events")
	require.NoError(t, err)
	assert.NoError(t, producer.Produce(context.Background(), testEvent{ID: 2}))
}

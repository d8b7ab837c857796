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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// JSONProducer 用 JSON 序列化消息，设置了 keyFunc 的话同一个 key 的消息会带上相同的 Key
type JSONProducer[T any] struct {
	producer mq.Producer
	topic    string
	keyFunc  func(evt T) string
}

type Option[T any] func(p *JSONProducer[T])

func WithKeyFunc[T any](fn func(evt T) string) Option[T] {
	return func(p *JSONProducer[T]) {
		p.keyFunc = fn
	}
}

func NewJSONProducer[T any](q mq.MQ, topic string, opts ...Option[T]) (*JSONProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, err
	}
	res := &JSONProducer[T]{
		producer: p,
		topic:    topic,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

func (p *JSONProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data}
	if p.keyFunc != nil {
		msg.Key = []byte(p.keyFunc(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("发送消息失败 topic: %s, %w", p.topic, err)
	}
	return nil
}

// Decode 反序列化 JSONProducer 发送的消息
func Decode[T any](msg *mq.Message) (T, error) {
	var res T
	err := json.Unmarshal(msg.Value, &res)
	if err != nil {
		return res, fmt.Errorf("解析消息失败 topic: %s, %w", msg.Topic, err)
	}
	return res, nil
}

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

// Event 事件自己声明要发往哪个 topic
type Event interface {
	Topic() string
}

type Producer[T Event] interface {
	Produce(ctx context.Context, evt T) error
}

// JSONProducer 把事件序列化成 JSON 发送到事件声明的 topic
type JSONProducer[T Event] struct {
	producer mq.Producer
	topic    string
}

func NewJSONProducer[T Event](q mq.MQ) (*JSONProducer[T], error) {
	var evt T
	topic := evt.Topic()
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的生产者失败: %w", topic, err)
	}
	return &JSONProducer[T]{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *JSONProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Topic: p.topic, Value: data})
	if err != nil {
		return fmt.Errorf("向topic=%s发送event=%#v失败: %w", p.topic, evt, err)
	}
	return nil
}

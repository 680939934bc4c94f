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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/echoboard/internal/pkg/mqx"

// TracingMQ 给所有生产者加上 OpenTelemetry 追踪，消费者保持原样
type TracingMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracingMQ(q mq.MQ) *TracingMQ {
	return &TracingMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracingMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracingProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracingProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (p *tracingProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, m, -1)
	defer span.End()
	res, err := p.Producer.Produce(ctx, m)
	p.end(span, err)
	return res, err
}

func (p *tracingProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, m, partition)
	defer span.End()
	res, err := p.Producer.ProduceWithPartition(ctx, m, partition)
	p.end(span, err)
	return res, err
}

func (p *tracingProducer) start(ctx context.Context, m *mq.Message, partition int) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq-api"),
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", p.topic),
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	if partition >= 0 {
		attrs = append(attrs, attribute.Int("messaging.destination.partition.id", partition))
	}
	return p.tracer.Start(ctx, p.topic+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attrs...))
}

func (p *tracingProducer) end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

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

const instrumentationName = "github.com/ecodeclub/algoknight/internal/pkg/mqx"

// TracingMQ 给发送和消费都加上 span
type TracingMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracingMQ(q mq.MQ) *TracingMQ {
	return &TracingMQ{
		MQ:     q,
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (t *TracingMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracingProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TracingMQ) Consumer(topic, id string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, id)
	if err != nil {
		return nil, err
	}
	return &tracingConsumer{Consumer: c, topic: topic, group: id, tracer: t.tracer}, nil
}

type tracingProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *tracingProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *tracingProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

func (t *tracingProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, "publish "+t.topic, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", t.topic),
	)
	if m != nil {
		span.SetAttributes(attribute.Int("messaging.message.body.size", len(m.Value)))
		if len(m.Key) > 0 {
			span.SetAttributes(attribute.String("messaging.message.key", string(m.Key)))
		}
	}
	return ctx, span
}

type tracingConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

// Consume 只记录拉取消息本身，处理消息的耗时不在 span 里面
func (t *tracingConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	_, span := t.tracer.Start(ctx, "receive "+t.topic, trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.operation", "receive"),
		attribute.String("messaging.destination.name", t.topic),
		attribute.String("messaging.consumer.group.name", t.group),
	)
	msg, err := t.Consumer.Consume(ctx)
	if err == nil {
		span.SetAttributes(
			attribute.Int64("messaging.destination.partition.id", msg.Partition),
			attribute.Int64("messaging.message.offset", msg.Offset),
		)
	}
	endSpan(span, err)
	return msg, err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type testEvent struct {
	Uid  int64  `json:"uid"`
	Name string `json:"name"`
}

func TestJSONProducer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "test_events", 1))
	consumer, err := q.Consumer("test_events", "test_group")
	require.NoError(t, err)

	p, err := NewJSONProducer[testEvent](q, "test_events", WithKeyFunc(func(evt testEvent) string {
		return evt.Name
	}))
	require.NoError(t, err)
	require.NoError(t, p.Produce(ctx, testEvent{Uid: 1, Name: "tourist"}))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("tourist"), msg.Key)
	evt, err := Decode[testEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, testEvent{Uid: 1, Name: "tourist"}, evt)
}

func TestTracingMQ(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	old := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	defer otel.SetTracerProvider(old)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, "test_events", 1))
	tq := NewTracingMQ(q)
	consumer, err := tq.Consumer("test_events", "test_group")
	require.NoError(t, err)
	p, err := NewJSONProducer[testEvent](tq, "test_events")
	require.NoError(t, err)
	require.NoError(t, p.Produce(ctx, testEvent{Uid: 2}))
	_, err = consumer.Consume(ctx)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "publish test_events", spans[0].Name())
	assert.Equal(t, trace.SpanKindProducer, spans[0].SpanKind())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, "receive test_events", spans[1].Name())
	assert.Equal(t, trace.SpanKindConsumer, spans[1].SpanKind())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode[testEvent](&mq.Message{Topic: "test_events", Value: []byte("{")})
	assert.Error(t, err)
}

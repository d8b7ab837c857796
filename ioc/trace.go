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

package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitZipkinTracer 要在 InitApp 之前调用，GORM 和 MQ 的 span 都依赖全局的 TracerProvider
func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		ServiceName string  `yaml:"serviceName"`
		Endpoint    string  `yaml:"endpoint"`
		SampleRatio float64 `yaml:"sampleRatio"`
	}
	cfg := Config{ServiceName: "algoknight", SampleRatio: 1}
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		elog.Panic("读取 trace 配置失败", elog.FieldErr(err))
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion("v0.0.1"),
		),
	)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		elog.Panic("init zipkin exporter failed", elog.FieldErr(err))
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}

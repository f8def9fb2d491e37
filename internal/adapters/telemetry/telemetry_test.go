package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/purge/internal/adapters/telemetry"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/purge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	ctx, parent := tracer.Start(context.Background(), "purge App")
	parent.SetAttribute(ports.SpanAttrProject, "App")
	parent.SetAttribute("keys", 4)
	parent.SetAttribute("multi_targeted", true)
	parent.SetAttribute("frameworks", []string{"net8.0", "net9.0"})
	parent.SetAttribute("other", struct{ A int }{A: 1})

	_, child := tracer.Start(ctx, "clean")
	child.RecordError(errors.New("clean failed"))
	child.RecordError(nil)
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "clean", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	attrs := spans[1].Attributes()
	assert.Contains(t, attrs, attribute.String(ports.SpanAttrProject, "App"))
	assert.Contains(t, attrs, attribute.Int("keys", 4))
	assert.Contains(t, attrs, attribute.Bool("multi_targeted", true))
	assert.Contains(t, attrs, attribute.StringSlice("frameworks", []string{"net8.0", "net9.0"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestLogBridge_LogsDurations(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var messages []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, ok := tracer.Start(context.Background(), "resolve")
	ok.SetAttribute(ports.SpanAttrProject, "App")
	ok.End()

	_, failed := tracer.Start(context.Background(), "delete")
	failed.RecordError(errors.New("permission denied"))
	failed.End()

	require.Len(t, messages, 2)
	assert.True(t, strings.HasPrefix(messages[0], "resolve [App] took "), messages[0])
	assert.True(t, strings.HasPrefix(messages[1], "delete failed after "), messages[1])

	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/purge/internal/adapters/logger"
	"go.trai.ch/purge/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for all purge spans.
const InstrumentationName = "purge"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// Spans are only reported through the log bridge, so nothing needs flushing on exit.
			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewLogBridge(log)),
			)
			otel.SetTracerProvider(tp)

			return NewOTelTracer(InstrumentationName), nil
		},
	})
}

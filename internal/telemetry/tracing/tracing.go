package tracing

import (
	"errors"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fittrack")

// EndSpanWithErrCheck marks the span as failed when err is set, then ends it.
// Not found errors are expected outcomes and are only recorded as events.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		if !isExpected(err) {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

// ExpectedErrors are errors that do not mark a span as failed.
var ExpectedErrors []error

func isExpected(err error) bool {
	for _, e := range ExpectedErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// HoneycombSetup configures the otel SDK to export to honeycomb, using the
// HONEYCOMB_API_KEY and OTEL_SERVICE_NAME env vars. The returned func flushes and
// shuts the exporters down.
func HoneycombSetup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, err
	}

	log.Debugln("honeycomb tracing enabled")
	return otelShutdown, nil
}

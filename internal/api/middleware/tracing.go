package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "baby-journal-api/http"

// unmatchedRoute names spans for requests no route handled.
const unmatchedRoute = "unmatched"

// Tracing starts a span per request using the global tracer provider.
func Tracing(next http.Handler) http.Handler {
	return NewTracing(otel.GetTracerProvider())(next)
}

// NewTracing returns middleware that opens one span per request on tp. The
// span is named after the chi route pattern once routing has finished, so
// baby and log IDs end up in attributes, never in the span name.
func NewTracing(tp trace.TracerProvider) func(http.Handler) http.Handler {
	tracer := tp.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			tw := &traceResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(tw, r.WithContext(ctx))

			route := unmatchedRoute
			babyID := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
				babyID = rctx.URLParam("babyId")
			}
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", tw.statusCode),
			)

			input := map[string]any{"method": r.Method, "route": route}
			if babyID != "" {
				span.SetAttributes(attribute.String("baby.id", babyID))
				input["baby_id"] = babyID
			}
			if r.URL.RawQuery != "" {
				input["query"] = r.URL.RawQuery
			}
			if inJSON, err := json.Marshal(input); err == nil {
				span.SetAttributes(attribute.String("langfuse.observation.input", string(inJSON)))
			}
			output := map[string]any{
				"status_code": tw.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if outJSON, err := json.Marshal(output); err == nil {
				span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
			}
		})
	}
}

type traceResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (tw *traceResponseWriter) WriteHeader(code int) {
	tw.statusCode = code
	tw.ResponseWriter.WriteHeader(code)
}

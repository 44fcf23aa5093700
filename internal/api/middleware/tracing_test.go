package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const (
	testBabyID = "11111111-1111-1111-1111-111111111111"
	testLogID  = "22222222-2222-2222-2222-222222222222"
)

func setupTracedRouter(t *testing.T) (http.Handler, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := chi.NewRouter()
	r.Use(NewTracing(tp))
	r.Route("/v1/babies/{babyId}", func(r chi.Router) {
		r.Patch("/logs/{logId}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Get("/feeds/prediction", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})
	return r, recorder
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracing_SpanNames(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantName   string
		wantStatus int64
		wantBaby   string
	}{
		{
			name:       "log update uses route pattern",
			method:     http.MethodPatch,
			path:       "/v1/babies/" + testBabyID + "/logs/" + testLogID,
			wantName:   "PATCH /v1/babies/{babyId}/logs/{logId}",
			wantStatus: http.StatusOK,
			wantBaby:   testBabyID,
		},
		{
			name:       "handler status is recorded",
			method:     http.MethodGet,
			path:       "/v1/babies/" + testBabyID + "/feeds/prediction",
			wantName:   "GET /v1/babies/{babyId}/feeds/prediction",
			wantStatus: http.StatusNotFound,
			wantBaby:   testBabyID,
		},
		{
			name:       "route without baby",
			method:     http.MethodGet,
			path:       "/health",
			wantName:   "GET /health",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recorder := setupTracedRouter(t)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			spans := recorder.Ended()
			if len(spans) != 1 {
				t.Fatalf("expected 1 span, got %d", len(spans))
			}
			span := spans[0]
			if span.Name() != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name(), tt.wantName)
			}
			if strings.Contains(span.Name(), testBabyID) {
				t.Errorf("span name leaks the baby id: %q", span.Name())
			}

			got := attrs(span.Attributes())
			if v := got["http.status_code"].AsInt64(); v != tt.wantStatus {
				t.Errorf("http.status_code = %d, want %d", v, tt.wantStatus)
			}
			if v, ok := got["baby.id"]; tt.wantBaby == "" {
				if ok {
					t.Errorf("unexpected baby.id %q", v.AsString())
				}
			} else if v.AsString() != tt.wantBaby {
				t.Errorf("baby.id = %q, want %q", v.AsString(), tt.wantBaby)
			}
		})
	}
}

func TestTracing_UnmatchedRoute(t *testing.T) {
	router, recorder := setupTracedRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope/"+testBabyID, nil))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].Name(); got != "GET unmatched" {
		t.Errorf("span name = %q, want %q", got, "GET unmatched")
	}
}

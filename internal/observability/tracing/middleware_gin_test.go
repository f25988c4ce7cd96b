package tracing

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGinMiddlewareNamesSpanAfterRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/api/orders/show/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/orders/list", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/api/orders/show/42", "/api/orders/list"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	ok := spans[0]
	if ok.Name() != "GET /api/orders/show/:id" {
		t.Fatalf("unexpected span name %q", ok.Name())
	}
	if !hasAttribute(ok.Attributes(), attribute.Int("http.response.status_code", http.StatusOK)) {
		t.Fatalf("missing status attribute: %v", ok.Attributes())
	}
	if ok.Status().Code == codes.Error {
		t.Fatal("successful request should not mark the span as failed")
	}

	failed := spans[1]
	if failed.Status().Code != codes.Error {
		t.Fatalf("expected error status, got %v", failed.Status())
	}
	if len(failed.Events()) == 0 {
		t.Fatal("expected the handler error to be recorded")
	}
}

func hasAttribute(attrs []attribute.KeyValue, want attribute.KeyValue) bool {
	for _, attr := range attrs {
		if attr == want {
			return true
		}
	}
	return false
}

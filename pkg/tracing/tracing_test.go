package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"study_buddy_backend/internal/config"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestInitTracer_StdoutExporter(t *testing.T) {
	tp, err := InitTracer(context.Background(), config.TracingConfig{
		Enabled:     true,
		Exporter:    "stdout",
		ServiceName: "study-buddy-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware("study-buddy-test"))

	var sawSpan bool
	r.GET("/ping", func(c *gin.Context) {
		sawSpan = trace.SpanContextFromContext(c.Request.Context()).IsValid()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, sawSpan)
}

func TestInitTracer_UnknownExporter(t *testing.T) {
	_, err := InitTracer(context.Background(), config.TracingConfig{Exporter: "zipkin"})
	require.Error(t, err)
}

package otellib

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtract_WithoutLogger(t *testing.T) {
	l := Extract(context.Background())
	assert.NotNil(t, l)
}

func TestToContext_Extract(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core))

	Extract(ctx).Info("hello")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
	assert.Equal(t, "00000000000000000000000000000000", logs.All()[0].ContextMap()[traceIDField])
}

func TestWrapError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ToContext(context.Background(), zap.New(core))

	WrapError(ctx, errors.New("some error"))

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, "some error", logs.All()[0].ContextMap()["error"])
}

func newGinRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware(logger, trace.NewNoopTracerProvider(), propagation.TraceContext{}))
	router.GET("/ping", func(c *gin.Context) {
		Extract(c.Request.Context()).Info("inside handler")
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestGinMiddleware_Generate_RequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := newGinRouter(zap.New(core))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	requestID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(requestID)
	assert.Equal(t, nil, err)

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "inside handler", logs.All()[0].Message)
	assert.Equal(t, requestID, logs.All()[0].ContextMap()[requestIDField])

	assert.Equal(t, "HTTP request", logs.All()[1].Message)
	assert.Equal(t, int64(200), logs.All()[1].ContextMap()["status"])
}

func TestGinMiddleware_Keep_RequestID(t *testing.T) {
	router := newGinRouter(zap.NewNop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

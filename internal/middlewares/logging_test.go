package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var seenRequestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/product/get/1/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "body", rr.Body.String())
	assert.NotEmpty(t, seenRequestID)
	assert.Equal(t, seenRequestID, rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	log := zap.NewNop().Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

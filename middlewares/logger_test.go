package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedRouter(status int) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/x", func(c *gin.Context) { c.Status(status) })
	return r, logs
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	r, logs := newLoggedRouter(http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?a=1", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "/x?a=1", entry.ContextMap()["path"])
	assert.Equal(t, id, entry.ContextMap()["request_id"])
}

func TestRequestLoggerKeepsIncomingRequestID(t *testing.T) {
	r, _ := newLoggedRouter(http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerLevelByStatus(t *testing.T) {
	for status, level := range map[int]zapcore.Level{
		http.StatusBadRequest:          zapcore.WarnLevel,
		http.StatusInternalServerError: zapcore.ErrorLevel,
	} {
		r, logs := newLoggedRouter(status)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, level, logs.All()[0].Level)
	}
}

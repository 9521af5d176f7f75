package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type panicController struct{}

func (panicController) RegisterRoutes(r *gin.Engine) {
	r.GET("/panic", func(*gin.Context) { panic("boom") })
}

func TestRouterRecoversPanics(t *testing.T) {
	cfg := &Config{EnableLoggingMiddleware: true}
	router := NewRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), panicController{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}

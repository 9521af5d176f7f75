package telegram

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/gin-gonic/gin"
)

type recordingDispatcher struct {
	updates []*domain.Update
}

func (d *recordingDispatcher) Dispatch(update *domain.Update) {
	d.updates = append(d.updates, update)
}

func newRouter(secret string) (*gin.Engine, *recordingDispatcher) {
	gin.SetMode(gin.TestMode)
	dispatcher := &recordingDispatcher{}
	router := gin.New()
	New(dispatcher, secret, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(router)
	return router, dispatcher
}

func TestWebhookDispatchesUpdate(t *testing.T) {
	router, dispatcher := newRouter("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"update_id":77,"message":{"message_id":1,"chat":{"id":1,"type":"private"},"date":0,"text":"/start"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretTokenHeader, "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(dispatcher.updates) != 1 || dispatcher.updates[0].UpdateID != 77 {
		t.Errorf("updates = %+v", dispatcher.updates)
	}
}

func TestWebhookRejectsWrongSecret(t *testing.T) {
	router, dispatcher := newRouter("s3cret")

	for _, token := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"update_id":1}`))
		if token != "" {
			req.Header.Set(secretTokenHeader, token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d", token, rec.Code)
		}
	}
	if len(dispatcher.updates) != 0 {
		t.Error("nothing must be dispatched")
	}
}

func TestWebhookInvalidJSON(t *testing.T) {
	router, dispatcher := newRouter("")

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if len(dispatcher.updates) != 0 {
		t.Error("nothing must be dispatched")
	}
}

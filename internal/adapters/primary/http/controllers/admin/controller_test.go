package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubRepo struct {
	records   []*domain.AnalysisRecord
	err       error
	gotUserID int64
	gotLimit  int
}

func (r *stubRepo) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	return nil
}

func (r *stubRepo) ListByUser(ctx context.Context, telegramUserID int64, limit int) ([]*domain.AnalysisRecord, error) {
	r.gotUserID = telegramUserID
	r.gotLimit = limit
	return r.records, r.err
}

func newRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(repo, "ops-token", slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(router)
	return router
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListAnalyses(t *testing.T) {
	repo := &stubRepo{records: []*domain.AnalysisRecord{
		{ID: uuid.New(), TelegramUserID: 42, Model: "gpt-4o-mini", Status: domain.AnalysisCompleted},
		{ID: uuid.New(), TelegramUserID: 42, Model: "gpt-4o-mini", Status: domain.AnalysisProviderFailed},
	}}

	rec := doGet(newRouter(repo), "/admin/analyses/42?limit=5", "ops-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp ListAnalysesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.UserID != 42 || resp.Count != 2 || resp.Analyses[1].Status != domain.AnalysisProviderFailed {
		t.Errorf("unexpected response %+v", resp)
	}
	if repo.gotUserID != 42 || repo.gotLimit != 5 {
		t.Errorf("repo called with user %d, limit %d", repo.gotUserID, repo.gotLimit)
	}
}

func TestListAnalysesLimits(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default", query: "", wantLimit: defaultLimit},
		{name: "capped", query: "?limit=1000", wantLimit: maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			rec := doGet(newRouter(repo), "/admin/analyses/7"+tt.query, "ops-token")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if repo.gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", repo.gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestListAnalysesEmpty(t *testing.T) {
	rec := doGet(newRouter(&stubRepo{}), "/admin/analyses/7", "ops-token")

	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if list, ok := raw["analyses"].([]interface{}); !ok || len(list) != 0 {
		t.Errorf("analyses must be an empty list, got %v", raw["analyses"])
	}
}

func TestListAnalysesErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		token    string
		repoErr  error
		wantCode int
	}{
		{name: "no token", path: "/admin/analyses/42", wantCode: http.StatusUnauthorized},
		{name: "wrong token", path: "/admin/analyses/42", token: "nope", wantCode: http.StatusUnauthorized},
		{name: "bad user id", path: "/admin/analyses/abc", token: "ops-token", wantCode: http.StatusBadRequest},
		{name: "bad limit", path: "/admin/analyses/42?limit=-1", token: "ops-token", wantCode: http.StatusBadRequest},
		{name: "repo failure", path: "/admin/analyses/42", token: "ops-token", repoErr: errors.New("conn refused"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{err: tt.repoErr}
			rec := doGet(newRouter(repo), tt.path, tt.token)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

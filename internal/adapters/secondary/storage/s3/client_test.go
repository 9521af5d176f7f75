package s3

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	mc, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("key", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	if err != nil {
		t.Fatalf("minio.New: %v", err)
	}
	return NewClient(mc, "bucket", "instructions/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetReadsObjectUnderPrefix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bucket/instructions/pc_step1.png" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		w.Header().Set("ETag", `"etag"`)
		_, _ = w.Write([]byte("png-bytes"))
	})

	data, err := client.Get(context.Background(), "pc_step1.png")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("unexpected data %q", data)
	}
}

func TestGetMissingObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>instructions/ios_step2.png</Key><BucketName>bucket</BucketName></Error>`))
	})

	if _, err := client.Get(context.Background(), "ios_step2.png"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Errorf("expected ErrImageNotFound, got %v", err)
	}
}

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesNew(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		rid := c.Get(RequestIDKey).(string)
		if rid == "" {
			t.Error("expected request_id to be generated")
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := RequestID()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "my-custom-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		if rid := c.Get(RequestIDKey).(string); rid != "my-custom-id" {
			t.Errorf("expected my-custom-id, got %s", rid)
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := RequestID()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "my-custom-id" {
		t.Errorf("expected my-custom-id in response header, got %s", got)
	}
}

func TestLogger_WritesRequestEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(RequestIDKey, "rid-1")

	handler := func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad payload")
	}
	if err := Logger(logger)(handler)(c); err != nil {
		t.Fatalf("logger should handle the error, got %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" || entry["request_id"] != "rid-1" || entry["path"] != "/api/notes" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if status, _ := entry["status"].(float64); status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %v", entry["status"])
	}
}

func TestRecovery_ConvertsPanic(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		panic("boom")
	}
	err := Recovery(zerolog.New(&buf))(handler)(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := SecurityHeaders()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, header := range []string{"X-Content-Type-Options", "X-Frame-Options", "Content-Security-Policy", "Cache-Control"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected %s header", header)
		}
	}
}

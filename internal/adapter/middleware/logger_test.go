package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "info"},
		{"client error", http.StatusConflict, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(zerolog.New(&buf)))
			e.GET("/projects", func(c echo.Context) error {
				c.Response().Header().Set(echo.HeaderXRequestID, "rid-1")
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects?lot_type=R", nil))

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v; raw=%s", err, buf.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Fatalf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["uri"] != "/projects?lot_type=R" || entry["method"] != "GET" {
				t.Fatalf("entry = %v", entry)
			}
			if int(entry["status"].(float64)) != tt.status {
				t.Fatalf("status = %v", entry["status"])
			}
			if entry["request_id"] != "rid-1" {
				t.Fatalf("request_id = %v", entry["request_id"])
			}
		})
	}
}

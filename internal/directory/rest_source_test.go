package directory

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"anniversaries/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRESTSource_QueriesWindowWithBearerToken(t *testing.T) {
	var gotAuth, gotRange, gotFrom, gotTo string
	var gotKeys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRange = r.URL.Query().Get("range")
		gotKeys = r.URL.Query()["key"]
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"employees":[{"identity":"ada@example.com","display_name":"Ada","hire_date":"2020-10-18"}]}`)
	}))
	defer srv.Close()

	src, err := NewRESTSource(srv.URL+"/profiles/anniversaries", "secret", time.Second, discardLogger())
	if err != nil {
		t.Fatalf("NewRESTSource returned error: %v", err)
	}

	window := WindowFor(domain.RangeDay, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), WeekRolling)
	records, err := src.QueryHireDateAnniversaries(context.Background(), window)
	if err != nil {
		t.Fatalf("query returned error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
	if gotRange != "Day" {
		t.Fatalf("unexpected range %q", gotRange)
	}
	if len(gotKeys) != 1 || gotKeys[0] != "10-18" {
		t.Fatalf("unexpected keys %v", gotKeys)
	}
	if gotFrom != "2026-10-18" || gotTo != "2026-10-18" {
		t.Fatalf("unexpected from/to %q..%q", gotFrom, gotTo)
	}
	if len(records) != 1 || records[0].Identity != "ada@example.com" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestRESTSource_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "http status", status: http.StatusUnauthorized, body: "token expired", wantErr: "status 401"},
		{name: "api error", status: http.StatusOK, body: `{"ok":false,"error":"invalid_auth"}`, wantErr: "invalid_auth"},
		{name: "malformed", status: http.StatusOK, body: `{"ok":tru`, wantErr: "decode directory response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			src, err := NewRESTSource(srv.URL, "", time.Second, discardLogger())
			if err != nil {
				t.Fatalf("NewRESTSource returned error: %v", err)
			}

			records, err := src.QueryHireDateAnniversaries(context.Background(), WindowFor(domain.RangeMonth, time.Now(), WeekRolling))
			if err == nil {
				t.Fatalf("expected error, got records %#v", records)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if records != nil {
				t.Fatalf("expected no partial records, got %#v", records)
			}
		})
	}
}

func TestNewRESTSource_ValidatesEndpoint(t *testing.T) {
	if _, err := NewRESTSource("", "", 0, discardLogger()); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
	if _, err := NewRESTSource("ftp://directory", "", 0, discardLogger()); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

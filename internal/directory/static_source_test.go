package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"anniversaries/internal/domain"
)

const fixture = `employees:
  - identity: ada@example.com
    display_name: Ada Lovelace
    job_title: Engineer
    department: R&D
    hire_date: 2015-10-18
  - identity: alan@example.com
    display_name: Alan Turing
    hire_date: 2019-11-02
  - identity: grace@example.com
    display_name: Grace Hopper
    hire_date: "not a date"
`

func TestLoadStaticSource_FiltersByWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := LoadStaticSource(path, discardLogger())
	if err != nil {
		t.Fatalf("LoadStaticSource returned error: %v", err)
	}

	window := WindowFor(domain.RangeDay, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), WeekRolling)
	records, err := src.QueryHireDateAnniversaries(context.Background(), window)
	if err != nil {
		t.Fatalf("query returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected match plus unparseable record, got %#v", records)
	}
	if records[0].Identity != "ada@example.com" || records[0].Department != "R&D" {
		t.Fatalf("unexpected first record: %#v", records[0])
	}
	if records[1].Identity != "grace@example.com" {
		t.Fatalf("expected unparseable record to be passed through, got %#v", records[1])
	}
}

func TestLoadStaticSource_MissingFile(t *testing.T) {
	if _, err := LoadStaticSource(filepath.Join(t.TempDir(), "missing.yaml"), discardLogger()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStaticSource_HonoursCancelledContext(t *testing.T) {
	src := NewStaticSource(nil, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.QueryHireDateAnniversaries(ctx, Window{}); err == nil {
		t.Fatalf("expected context error")
	}
}

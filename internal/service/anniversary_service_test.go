package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"anniversaries/internal/directory"
	"anniversaries/internal/domain"
)

var fixedNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu      sync.Mutex
	records []directory.RawRecord
	err     error
	calls   int
	windows []directory.Window
}

func (f *fakeSource) QueryHireDateAnniversaries(_ context.Context, window directory.Window) ([]directory.RawRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.windows = append(f.windows, window)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]directory.RawRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func newTestService(src directory.Source) *AnniversaryService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAnniversaryService(src, logger, WithClock(func() time.Time { return fixedNow }))
}

func hiredYearsAgo(years int) string {
	return fixedNow.AddDate(-years, 0, 0).Format("2006-01-02")
}

func TestFetchAnniversaries_ThreeYearsAgoToday(t *testing.T) {
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "ada@example.com", DisplayName: "Ada", HireDate: hiredYearsAgo(3)},
	}}
	svc := newTestService(src)

	records, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeDay)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := domain.YearsOfService(records[0].HireDate, fixedNow); got != 3 {
		t.Fatalf("expected 3 years, got %d", got)
	}
	if src.calls != 1 {
		t.Fatalf("expected exactly one directory call, got %d", src.calls)
	}
	if keys := src.windows[0].Keys(); len(keys) != 1 || keys[0] != "10-18" {
		t.Fatalf("unexpected window keys %v", keys)
	}
}

func TestFetchAnniversaries_ExcludesUnusableHireDates(t *testing.T) {
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "missing@example.com", DisplayName: "Missing", HireDate: ""},
		{Identity: "garbage@example.com", DisplayName: "Garbage", HireDate: "last spring"},
		{Identity: "future@example.com", DisplayName: "Future", HireDate: "2031-10-18"},
		{Identity: "new@example.com", DisplayName: "New Hire", HireDate: fixedNow.Format("2006-01-02")},
		{Identity: "ok@example.com", DisplayName: "Okay", HireDate: hiredYearsAgo(1)},
	}}
	svc := newTestService(src)

	records, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeDay)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}
	if len(records) != 1 || records[0].Identity != "ok@example.com" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestFetchAnniversaries_OrdersByYearsThenName(t *testing.T) {
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "c@example.com", DisplayName: "Carol", HireDate: hiredYearsAgo(9)},
		{Identity: "b2@example.com", DisplayName: "Bob", HireDate: hiredYearsAgo(2)},
		{Identity: "a@example.com", DisplayName: "Alice", HireDate: hiredYearsAgo(2)},
		{Identity: "b1@example.com", DisplayName: "Bob", HireDate: hiredYearsAgo(2)},
		{Identity: "d@example.com", DisplayName: "Dan", HireDate: hiredYearsAgo(1)},
	}}
	svc := newTestService(src)

	records, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeDay)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}

	want := []string{"d@example.com", "a@example.com", "b1@example.com", "b2@example.com", "c@example.com"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, id := range want {
		if records[i].Identity != id {
			t.Fatalf("position %d: got %s, want %s", i, records[i].Identity, id)
		}
	}
}

func TestFetchAnniversaries_Truncation(t *testing.T) {
	raw := make([]directory.RawRecord, 0, 12)
	for i := 0; i < 12; i++ {
		raw = append(raw, directory.RawRecord{
			Identity:    fmt.Sprintf("e%02d@example.com", i),
			DisplayName: fmt.Sprintf("Employee %02d", i),
			HireDate:    hiredYearsAgo(i%10 + 1),
		})
	}
	src := &fakeSource{records: raw}
	svc := newTestService(src)

	all, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeMonth)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected maxItems=0 to return all 12 records, got %d", len(all))
	}

	five, err := svc.FetchAnniversaries(context.Background(), 5, domain.RangeMonth)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}
	if len(five) != 5 {
		t.Fatalf("expected 5 records, got %d", len(five))
	}
	for i := range five {
		if five[i].Identity != all[i].Identity {
			t.Fatalf("truncated list diverges from full ordering at %d", i)
		}
	}
}

func TestFetchAnniversaries_Idempotent(t *testing.T) {
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "x@example.com", DisplayName: "Xavier", HireDate: hiredYearsAgo(4)},
		{Identity: "y@example.com", DisplayName: "Yara", HireDate: hiredYearsAgo(4)},
		{Identity: "z@example.com", DisplayName: "Zed", HireDate: hiredYearsAgo(1)},
	}}
	svc := newTestService(src)

	first, err := svc.FetchAnniversaries(context.Background(), 2, domain.RangeWeek)
	if err != nil {
		t.Fatalf("first call returned error: %v", err)
	}
	second, err := svc.FetchAnniversaries(context.Background(), 2, domain.RangeWeek)
	if err != nil {
		t.Fatalf("second call returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("results differ at %d: %#v vs %#v", i, first[i], second[i])
		}
	}
	if src.calls != 2 {
		t.Fatalf("expected every call to re-query the directory, got %d calls", src.calls)
	}
}

func TestFetchAnniversaries_WrapsSourceFailure(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connect: connection refused")
	svc := newTestService(&fakeSource{err: cause})

	records, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeDay)
	if records != nil {
		t.Fatalf("expected no partial records, got %#v", records)
	}

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved")
	}
	if err.Error() != cause.Error() {
		t.Fatalf("expected message to be the cause's, got %q", err.Error())
	}
}

func TestAnniversaries_AnnotatesTierAndUnit(t *testing.T) {
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "one@example.com", DisplayName: "One", HireDate: hiredYearsAgo(1)},
		{Identity: "ten@example.com", DisplayName: "Ten", HireDate: hiredYearsAgo(10)},
	}}
	svc := newTestService(src)

	items, err := svc.Anniversaries(context.Background(), domain.AnniversaryQuery{Range: domain.RangeDay}, "year", "years")
	if err != nil {
		t.Fatalf("Anniversaries returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Years != 1 || items[0].Tier != domain.TierBronze || items[0].Unit != "year" {
		t.Fatalf("unexpected first item: %#v", items[0])
	}
	if items[1].Years != 10 || items[1].Tier != domain.TierGold || items[1].Unit != "years" {
		t.Fatalf("unexpected second item: %#v", items[1])
	}
}

func TestFetchAnniversaries_UsesConfiguredLocation(t *testing.T) {
	// 2026-10-18 23:30 UTC is already 2026-10-19 in Tokyo.
	late := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	src := &fakeSource{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAnniversaryService(src, logger, WithClock(func() time.Time { return late }), WithLocation(tokyo))

	if _, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeDay); err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}
	if keys := src.windows[0].Keys(); len(keys) != 1 || keys[0] != "10-19" {
		t.Fatalf("expected window in configured location, got %v", keys)
	}
}

func TestFetchAnniversaries_RollingWeekAcrossYearEnd(t *testing.T) {
	dec29 := time.Date(2026, time.December, 29, 9, 0, 0, 0, time.UTC)
	src := &fakeSource{records: []directory.RawRecord{
		{Identity: "jan@example.com", DisplayName: "January Hire", HireDate: "2026-01-02"},
		{Identity: "vet@example.com", DisplayName: "Veteran", HireDate: "2020-01-02"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAnniversaryService(src, logger, WithClock(func() time.Time { return dec29 }))

	records, err := svc.FetchAnniversaries(context.Background(), 0, domain.RangeWeek)
	if err != nil {
		t.Fatalf("FetchAnniversaries returned error: %v", err)
	}

	keys := src.windows[0].Keys()
	if keys[len(keys)-1] != "01-04" {
		t.Fatalf("expected the rolling week to reach 01-04, got %v", keys)
	}
	// Tenure is counted against today's year, so the January hire from this
	// year has 0 years and the veteran shows 6 rather than 7.
	if len(records) != 1 || records[0].Identity != "vet@example.com" {
		t.Fatalf("expected only the veteran, got %#v", records)
	}
	if got := domain.YearsOfService(records[0].HireDate, dec29); got != 6 {
		t.Fatalf("expected 6 years, got %d", got)
	}
}

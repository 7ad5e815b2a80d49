package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		years int
		want  TenureTier
	}{
		{years: 1, want: TierBronze},
		{years: 2, want: TierBronze},
		{years: 3, want: TierSilver},
		{years: 7, want: TierSilver},
		{years: 8, want: TierGold},
		{years: 40, want: TierGold},
	}

	for _, tt := range tests {
		if got := TierFor(tt.years); got != tt.want {
			t.Fatalf("TierFor(%d) = %s, want %s", tt.years, got, tt.want)
		}
	}
}

func TestTierFor_MonotonicNonDecreasing(t *testing.T) {
	prev := TierFor(-5)
	for years := -4; years <= 60; years++ {
		got := TierFor(years)
		if got < prev {
			t.Fatalf("tier decreased at %d years: %s after %s", years, got, prev)
		}
		if got != TierBronze && got != TierSilver && got != TierGold {
			t.Fatalf("unexpected tier %d for %d years", got, years)
		}
		prev = got
	}
}

func TestYearsOfService_UsesCalendarYears(t *testing.T) {
	hire := time.Date(2016, time.December, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)

	if got := YearsOfService(hire, now); got != 10 {
		t.Fatalf("expected 10 years, got %d", got)
	}
}

func TestYearUnit(t *testing.T) {
	if got := YearUnit(1, "year", "years"); got != "year" {
		t.Fatalf("expected singular label, got %q", got)
	}
	for _, years := range []int{0, 2, 3, 11} {
		if got := YearUnit(years, "year", "years"); got != "years" {
			t.Fatalf("expected plural label for %d, got %q", years, got)
		}
	}
}

func TestParseDateRange(t *testing.T) {
	for raw, want := range map[string]DateRange{"Day": RangeDay, "week": RangeWeek, " MONTH ": RangeMonth} {
		got, err := ParseDateRange(raw)
		if err != nil {
			t.Fatalf("ParseDateRange(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseDateRange(%q) = %s, want %s", raw, got, want)
		}
	}

	_, err := ParseDateRange("Year")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Field != "range" {
		t.Fatalf("unexpected field %q", cfgErr.Field)
	}
}

func TestWidgetSettingsNormalize_ClampsMaxItems(t *testing.T) {
	got := WidgetSettings{MaxItems: -3, Range: DateRange(9), MoreLink: "  "}.Normalize()
	if got.MaxItems != 0 {
		t.Fatalf("expected max items clamped to 0, got %d", got.MaxItems)
	}
	if got.Range != RangeDay {
		t.Fatalf("expected range defaulted to Day, got %s", got.Range)
	}
	if got.MoreLink != "" {
		t.Fatalf("expected blank more link to be trimmed, got %q", got.MoreLink)
	}

	if got := (WidgetSettings{MaxItems: 50}).Normalize(); got.MaxItems != MaxItemsLimit {
		t.Fatalf("expected max items clamped to %d, got %d", MaxItemsLimit, got.MaxItems)
	}
}

func TestDataSourceError_UsesUnderlyingMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DataSourceError{Op: "query directory", Err: cause}

	if err.Error() != "connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected error to unwrap to cause")
	}
}

func TestAnnotate_ExcludesZeroAndNegativeYears(t *testing.T) {
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	for _, hireYear := range []int{2026, 2027, 2030} {
		rec := EmployeeRecord{Identity: "x", HireDate: time.Date(hireYear, time.October, 18, 0, 0, 0, 0, time.UTC)}
		if _, ok := Annotate(rec, now, "year", "years"); ok {
			t.Fatalf("expected hire year %d to be excluded", hireYear)
		}
	}

	rec := EmployeeRecord{Identity: "y", HireDate: time.Date(2023, time.October, 18, 0, 0, 0, 0, time.UTC)}
	got, ok := Annotate(rec, now, "year", "years")
	if !ok {
		t.Fatalf("expected 3-year record to be kept")
	}
	if got.Years != 3 || got.Tier != TierSilver || got.Unit != "years" {
		t.Fatalf("unexpected annotation: %#v", got)
	}
}

package directory

import (
	"errors"
	"testing"
)

func TestParseHireDate_AcceptedLayouts(t *testing.T) {
	for _, raw := range []string{"2019-03-04", "2019-03-04T09:30:00Z", "2019-03-04T09:30:00", "03/04/2019", " 2019-03-04 "} {
		got, err := ParseHireDate(raw)
		if err != nil {
			t.Fatalf("ParseHireDate(%q) returned error: %v", raw, err)
		}
		if got.Format("2006-01-02") != "2019-03-04" {
			t.Fatalf("ParseHireDate(%q) = %s", raw, got)
		}
	}
}

func TestParseHireDate_Rejects(t *testing.T) {
	if _, err := ParseHireDate(""); !errors.Is(err, ErrMissingHireDate) {
		t.Fatalf("expected ErrMissingHireDate, got %v", err)
	}
	if _, err := ParseHireDate("sometime in 2019"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

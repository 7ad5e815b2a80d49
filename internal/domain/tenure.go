package domain

import (
	"encoding/json"
	"time"
)

type TenureTier int

const (
	TierBronze TenureTier = iota
	TierSilver
	TierGold
)

const (
	silverFromYears = 3
	goldFromYears   = 8
)

// TierFor classifies years of service. Callers drop records with years <= 0
// before asking for a tier.
func TierFor(years int) TenureTier {
	switch {
	case years >= goldFromYears:
		return TierGold
	case years >= silverFromYears:
		return TierSilver
	default:
		return TierBronze
	}
}

func (t TenureTier) String() string {
	switch t {
	case TierGold:
		return "gold"
	case TierSilver:
		return "silver"
	default:
		return "bronze"
	}
}

func (t TenureTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TenureTier) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw {
	case "bronze":
		*t = TierBronze
	case "silver":
		*t = TierSilver
	case "gold":
		*t = TierGold
	default:
		return &ConfigurationError{Field: "tier", Value: raw, Reason: "must be bronze, silver or gold"}
	}
	return nil
}

// YearsOfService compares calendar years only, matching how anniversaries
// are announced on the day itself.
func YearsOfService(hireDate, now time.Time) int {
	return now.Year() - hireDate.Year()
}

func YearUnit(years int, singular, plural string) string {
	if years == 1 {
		return singular
	}
	return plural
}

// Annotate derives tenure for a record. It reports false for records without
// at least one full calendar year of service, which are never celebrated.
func Annotate(rec EmployeeRecord, now time.Time, singular, plural string) (Anniversary, bool) {
	years := YearsOfService(rec.HireDate, now)
	if years <= 0 {
		return Anniversary{}, false
	}

	return Anniversary{
		EmployeeRecord: rec,
		Years:          years,
		Tier:           TierFor(years),
		Unit:           YearUnit(years, singular, plural),
	}, true
}

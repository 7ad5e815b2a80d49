package domain

import (
	"encoding/json"
	"strings"
)

type DateRange int

const (
	RangeDay DateRange = iota
	RangeWeek
	RangeMonth
)

func ParseDateRange(raw string) (DateRange, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "day":
		return RangeDay, nil
	case "week":
		return RangeWeek, nil
	case "month":
		return RangeMonth, nil
	default:
		return RangeDay, &ConfigurationError{Field: "range", Value: raw, Reason: "must be one of Day|Week|Month"}
	}
}

func (r DateRange) String() string {
	switch r {
	case RangeWeek:
		return "Week"
	case RangeMonth:
		return "Month"
	default:
		return "Day"
	}
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *DateRange) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseDateRange(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

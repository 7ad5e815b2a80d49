package directory

import (
	"fmt"
	"strings"
	"time"

	"anniversaries/internal/domain"
)

// WeekPolicy decides what "this week" means for the Week range.
type WeekPolicy int

const (
	// WeekRolling covers today and the following six days.
	WeekRolling WeekPolicy = iota
	// WeekCalendar covers the Sunday-to-Saturday week containing today.
	WeekCalendar
)

func ParseWeekPolicy(raw string) (WeekPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "rolling":
		return WeekRolling, nil
	case "calendar":
		return WeekCalendar, nil
	default:
		return WeekRolling, &domain.ConfigurationError{Field: "week_policy", Value: raw, Reason: "must be rolling|calendar"}
	}
}

func (p WeekPolicy) String() string {
	if p == WeekCalendar {
		return "calendar"
	}
	return "rolling"
}

const monthDayLayout = "01-02"

// Window is the set of calendar days (month and day only) selected by a
// DateRange relative to a given day.
type Window struct {
	Range domain.DateRange
	From  time.Time
	To    time.Time
	keys  []string
	set   map[string]struct{}
}

func WindowFor(r domain.DateRange, now time.Time, policy WeekPolicy) Window {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	from, to := today, today
	switch r {
	case domain.RangeWeek:
		if policy == WeekCalendar {
			from = today.AddDate(0, 0, -int(today.Weekday()))
		}
		to = from.AddDate(0, 0, 6)
	case domain.RangeMonth:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to = from.AddDate(0, 1, -1)
	}

	w := Window{Range: r, From: from, To: to, set: make(map[string]struct{})}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		w.add(d.Format(monthDayLayout))
		// Leap-day hires celebrate on Feb 28 in common years.
		if d.Month() == time.February && d.Day() == 28 && !isLeapYear(d.Year()) {
			w.add("02-29")
		}
	}

	return w
}

func (w *Window) add(key string) {
	if _, ok := w.set[key]; ok {
		return
	}
	w.set[key] = struct{}{}
	w.keys = append(w.keys, key)
}

// Keys returns the MM-DD keys of the window in calendar order.
func (w Window) Keys() []string {
	out := make([]string, len(w.keys))
	copy(out, w.keys)
	return out
}

func (w Window) Contains(t time.Time) bool {
	_, ok := w.set[t.Format(monthDayLayout)]
	return ok
}

func (w Window) String() string {
	return fmt.Sprintf("%s[%s..%s]", w.Range, w.From.Format("2006-01-02"), w.To.Format("2006-01-02"))
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

package domain

import "strings"

const MaxItemsLimit = 20

// WidgetSettings are the values the host's property pane hands to a widget.
type WidgetSettings struct {
	MaxItems int       `json:"max_items"`
	Range    DateRange `json:"range"`
	Title    string    `json:"title"`
	MoreLink string    `json:"more_link"`
}

// Normalize clamps values the way the property pane bounds them.
func (s WidgetSettings) Normalize() WidgetSettings {
	if s.MaxItems < 0 {
		s.MaxItems = 0
	}
	if s.MaxItems > MaxItemsLimit {
		s.MaxItems = MaxItemsLimit
	}
	if s.Range < RangeDay || s.Range > RangeMonth {
		s.Range = RangeDay
	}
	s.MoreLink = strings.TrimSpace(s.MoreLink)
	return s
}

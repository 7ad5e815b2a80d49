package handlers

import (
	"anniversaries/internal/domain"
	"anniversaries/internal/widget"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
}

type AnniversariesResponse struct {
	Range    domain.DateRange     `json:"range"`
	MaxItems int                  `json:"max_items"`
	Items    []domain.Anniversary `json:"items"`
}

// WidgetSettingsRequest carries a partial settings update. Omitted fields
// keep their current (or default) value.
type WidgetSettingsRequest struct {
	MaxItems *int    `json:"max_items"`
	Range    *string `json:"range"`
	Title    *string `json:"title"`
	MoreLink *string `json:"more_link"`
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type MountWidgetResponse struct {
	ID       string                `json:"id"`
	Settings domain.WidgetSettings `json:"settings"`
	View     widget.View           `json:"view"`
}

type WidgetSettingsResponse struct {
	ID       string                `json:"id"`
	Settings domain.WidgetSettings `json:"settings"`
}

type WidgetViewResponse struct {
	ID   string      `json:"id"`
	View widget.View `json:"view"`
}

type ThemeResponse struct {
	Theme       widget.Theme `json:"theme"`
	Subscribers int          `json:"subscribers"`
}

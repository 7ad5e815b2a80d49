package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"anniversaries/internal/domain"
	"anniversaries/internal/widget"

	"github.com/gin-gonic/gin"
)

type AnniversaryFinder interface {
	Anniversaries(ctx context.Context, q domain.AnniversaryQuery, singular, plural string) ([]domain.Anniversary, error)
}

type AnniversaryHandler struct {
	finder   AnniversaryFinder
	defaults domain.WidgetSettings
	labels   widget.Labels
}

func NewAnniversaryHandler(finder AnniversaryFinder, defaults domain.WidgetSettings, labels widget.Labels) *AnniversaryHandler {
	return &AnniversaryHandler{
		finder:   finder,
		defaults: defaults.Normalize(),
		labels:   labels,
	}
}

// List godoc
// @Summary List work anniversaries
// @Description Returns employees whose hire date anniversary falls in the range, youngest tenure first, with tenure tier.
// @Tags anniversaries
// @Produce json
// @Param max_items query int false "Maximum items, 0 for no limit"
// @Param range query string false "Day|Week|Month"
// @Success 200 {object} AnniversariesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/anniversaries [get]
func (h *AnniversaryHandler) List(c *gin.Context) {
	maxItems := h.defaults.MaxItems
	if raw := strings.TrimSpace(c.Query("max_items")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_items must be a non-negative number"})
			return
		}
		maxItems = parsed
	}

	r := h.defaults.Range
	if raw := strings.TrimSpace(c.Query("range")); raw != "" {
		parsed, err := domain.ParseDateRange(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		r = parsed
	}

	items, err := h.finder.Anniversaries(c.Request.Context(), domain.AnniversaryQuery{MaxItems: maxItems, Range: r}, h.labels.Year, h.labels.Years)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AnniversariesResponse{Range: r, MaxItems: maxItems, Items: items})
}

func statusFor(err error) int {
	var cfgErr *domain.ConfigurationError
	var srcErr *domain.DataSourceError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusBadRequest
	case errors.As(err, &srcErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

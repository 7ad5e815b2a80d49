package handlers

import (
	"net/http"

	"anniversaries/internal/widget"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themes *widget.ThemeProvider
}

func NewThemeHandler(themes *widget.ThemeProvider) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Current godoc
// @Summary Current theme
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /api/theme [get]
func (h *ThemeHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Theme: h.themes.Current(), Subscribers: h.themes.Subscribers()})
}

// Publish godoc
// @Summary Change the theme
// @Description Publishes a theme change; every mounted widget re-renders with it.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body widget.Theme true "Theme"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/theme [put]
func (h *ThemeHandler) Publish(c *gin.Context) {
	var theme widget.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.themes.Publish(theme)
	c.JSON(http.StatusOK, ThemeResponse{Theme: theme, Subscribers: h.themes.Subscribers()})
}

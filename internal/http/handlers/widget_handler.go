package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"anniversaries/internal/domain"
	"anniversaries/internal/host"
	"anniversaries/internal/widget"

	"github.com/gin-gonic/gin"
)

type WidgetHost interface {
	Mount(settings domain.WidgetSettings) string
	Settings(id string) (domain.WidgetSettings, error)
	UpdateSettings(id string, settings domain.WidgetSettings) (domain.WidgetSettings, error)
	UpdateTitle(id, title string) error
	View(id string) (widget.View, error)
	Subscribe(id string) (<-chan widget.View, func(), error)
	Unmount(id string) error
}

type WidgetHandler struct {
	host     WidgetHost
	defaults domain.WidgetSettings
}

func NewWidgetHandler(h WidgetHost, defaults domain.WidgetSettings) *WidgetHandler {
	return &WidgetHandler{host: h, defaults: defaults.Normalize()}
}

// Mount godoc
// @Summary Mount a widget
// @Description Mounts a new widget instance; omitted settings take the configured defaults.
// @Tags widgets
// @Accept json
// @Produce json
// @Param request body WidgetSettingsRequest false "Widget settings"
// @Success 201 {object} MountWidgetResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/widgets [post]
func (h *WidgetHandler) Mount(c *gin.Context) {
	var req WidgetSettingsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := req.apply(h.defaults)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := h.host.Mount(settings)
	stored, err := h.host.Settings(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	view, err := h.host.View(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, MountWidgetResponse{ID: id, Settings: stored, View: view})
}

// View godoc
// @Summary Render a widget
// @Tags widgets
// @Produce json
// @Param id path string true "Widget ID"
// @Success 200 {object} WidgetViewResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id} [get]
func (h *WidgetHandler) View(c *gin.Context) {
	id := c.Param("id")
	view, err := h.host.View(id)
	if err != nil {
		writeHostError(c, err)
		return
	}

	c.JSON(http.StatusOK, WidgetViewResponse{ID: id, View: view})
}

// Settings godoc
// @Summary Widget settings
// @Tags widgets
// @Produce json
// @Param id path string true "Widget ID"
// @Success 200 {object} WidgetSettingsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id}/settings [get]
func (h *WidgetHandler) Settings(c *gin.Context) {
	id := c.Param("id")
	settings, err := h.host.Settings(id)
	if err != nil {
		writeHostError(c, err)
		return
	}

	c.JSON(http.StatusOK, WidgetSettingsResponse{ID: id, Settings: settings})
}

// UpdateSettings godoc
// @Summary Update widget settings
// @Description Applies a partial settings update and re-activates the widget when anything changed.
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body WidgetSettingsRequest true "Settings update"
// @Success 200 {object} WidgetSettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id}/settings [put]
func (h *WidgetHandler) UpdateSettings(c *gin.Context) {
	id := c.Param("id")
	var req WidgetSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := h.host.Settings(id)
	if err != nil {
		writeHostError(c, err)
		return
	}

	next, err := req.apply(current)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.host.UpdateSettings(id, next)
	if err != nil {
		writeHostError(c, err)
		return
	}

	c.JSON(http.StatusOK, WidgetSettingsResponse{ID: id, Settings: stored})
}

// UpdateTitle godoc
// @Summary Update widget title
// @Tags widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body UpdateTitleRequest true "New title"
// @Success 200 {object} WidgetViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id}/title [put]
func (h *WidgetHandler) UpdateTitle(c *gin.Context) {
	id := c.Param("id")
	var req UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.host.UpdateTitle(id, req.Title); err != nil {
		writeHostError(c, err)
		return
	}

	view, err := h.host.View(id)
	if err != nil {
		writeHostError(c, err)
		return
	}
	c.JSON(http.StatusOK, WidgetViewResponse{ID: id, View: view})
}

// SubmitTitle handles the inline title form rendered in the widget page.
func (h *WidgetHandler) SubmitTitle(c *gin.Context) {
	id := c.Param("id")
	if err := h.host.UpdateTitle(id, c.PostForm("title")); err != nil {
		writeHostError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/widgets/"+id)
}

// Unmount godoc
// @Summary Unmount a widget
// @Tags widgets
// @Param id path string true "Widget ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id} [delete]
func (h *WidgetHandler) Unmount(c *gin.Context) {
	if err := h.host.Unmount(c.Param("id")); err != nil {
		writeHostError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Events godoc
// @Summary Stream widget renders
// @Description Server-sent events: the current view, then one "view" event per re-render.
// @Tags widgets
// @Produce text/event-stream
// @Param id path string true "Widget ID"
// @Success 200 {object} widget.View
// @Failure 404 {object} ErrorResponse
// @Router /api/widgets/{id}/events [get]
func (h *WidgetHandler) Events(c *gin.Context) {
	id := c.Param("id")
	ch, cancel, err := h.host.Subscribe(id)
	if err != nil {
		writeHostError(c, err)
		return
	}
	defer cancel()

	current, err := h.host.View(id)
	if err != nil {
		writeHostError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.SSEvent("view", current)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case v, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("view", v)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Page renders a mounted widget as HTML.
func (h *WidgetHandler) Page(c *gin.Context) {
	id := c.Param("id")
	view, err := h.host.View(id)
	if err != nil {
		if errors.Is(err, host.ErrWidgetNotFound) {
			c.String(http.StatusNotFound, "widget not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "widget.html", gin.H{
		"ID":      id,
		"View":    view,
		"Refresh": view.Kind == widget.ViewLoading,
	})
}

func (r WidgetSettingsRequest) apply(base domain.WidgetSettings) (domain.WidgetSettings, error) {
	out := base
	if r.MaxItems != nil {
		out.MaxItems = *r.MaxItems
	}
	if r.Range != nil {
		parsed, err := domain.ParseDateRange(strings.TrimSpace(*r.Range))
		if err != nil {
			return domain.WidgetSettings{}, err
		}
		out.Range = parsed
	}
	if r.Title != nil {
		out.Title = *r.Title
	}
	if r.MoreLink != nil {
		out.MoreLink = *r.MoreLink
	}
	return out.Normalize(), nil
}

func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeHostError(c *gin.Context, err error) {
	if errors.Is(err, host.ErrWidgetNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

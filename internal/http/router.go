package http

import (
	"log/slog"

	"anniversaries/internal/http/handlers"
	"anniversaries/internal/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDependencies struct {
	Logger             *slog.Logger
	HealthHandler      *handlers.HealthHandler
	AnniversaryHandler *handlers.AnniversaryHandler
	WidgetHandler      *handlers.WidgetHandler
	ThemeHandler       *handlers.ThemeHandler
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.SetHTMLTemplate(handlers.Templates())

	r.GET("/healthz", deps.HealthHandler.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/widgets/:id", deps.WidgetHandler.Page)
	r.POST("/widgets/:id/title", deps.WidgetHandler.SubmitTitle)

	api := r.Group("/api")
	{
		api.GET("/anniversaries", deps.AnniversaryHandler.List)

		api.POST("/widgets", deps.WidgetHandler.Mount)
		api.GET("/widgets/:id", deps.WidgetHandler.View)
		api.DELETE("/widgets/:id", deps.WidgetHandler.Unmount)
		api.GET("/widgets/:id/settings", deps.WidgetHandler.Settings)
		api.PUT("/widgets/:id/settings", deps.WidgetHandler.UpdateSettings)
		api.PUT("/widgets/:id/title", deps.WidgetHandler.UpdateTitle)
		api.GET("/widgets/:id/events", deps.WidgetHandler.Events)

		api.GET("/theme", deps.ThemeHandler.Current)
		api.PUT("/theme", deps.ThemeHandler.Publish)
	}

	return r
}

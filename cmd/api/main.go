package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "anniversaries/docs/swagger"
	"anniversaries/internal/app"
)

// @title Work Anniversaries API
// @version 1.0
// @description Work anniversary widget host: anniversary lookups, mounted widgets, theme changes and server-rendered widget pages.
// @BasePath /
// @schemes http https
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

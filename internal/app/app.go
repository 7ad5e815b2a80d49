package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"anniversaries/internal/config"
	"anniversaries/internal/database"
	"anniversaries/internal/directory"
	"anniversaries/internal/domain"
	"anniversaries/internal/host"
	apphttp "anniversaries/internal/http"
	"anniversaries/internal/http/handlers"
	"anniversaries/internal/repository"
	"anniversaries/internal/scheduler"
	"anniversaries/internal/service"
	"anniversaries/internal/widget"
)

// DefaultWidgetID is the widget mounted from configuration at startup.
const DefaultWidgetID = "default"

type App struct {
	cfg       config.Config
	logger    *slog.Logger
	pool      *pgxpool.Pool
	host      *host.Host
	httpSrv   *http.Server
	scheduler *scheduler.Scheduler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.App.Environment)

	defaults, weekPolicy, err := widgetDefaults(cfg)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	source, pool, err := openSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	anniversarySvc := service.NewAnniversaryService(source, logger,
		service.WithLocation(location),
		service.WithWeekPolicy(weekPolicy),
	)

	labels := widget.Labels{
		Loading: cfg.Labels.Loading,
		Empty:   cfg.Labels.Empty,
		SeeAll:  cfg.Labels.SeeAll,
		Year:    cfg.Labels.Year,
		Years:   cfg.Labels.Years,
	}
	themes := widget.NewThemeProvider(widget.DefaultTheme())

	widgetHost := host.New(ctx, host.Dependencies{
		Fetcher: anniversarySvc,
		Themes:  themes,
		Persona: widget.HTMLPersona{},
		Labels:  labels,
		Now:     anniversarySvc.Now,
		Logger:  logger,
		TitleAction: func(id string) string {
			return "/widgets/" + id + "/title"
		},
	})
	widgetHost.MountWithID(DefaultWidgetID, defaults)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		Logger:             logger,
		HealthHandler:      handlers.NewHealthHandler(cfg.Directory.Source),
		AnniversaryHandler: handlers.NewAnniversaryHandler(anniversarySvc, defaults, labels),
		WidgetHandler:      handlers.NewWidgetHandler(widgetHost, defaults),
		ThemeHandler:       handlers.NewThemeHandler(themes),
	})

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(widgetHost, cfg.Scheduler.PollInterval, logger)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		host:      widgetHost,
		httpSrv:   httpSrv,
		scheduler: sched,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.scheduler != nil {
		go a.scheduler.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting",
			slog.String("addr", a.httpSrv.Addr),
			slog.String("directory_source", a.cfg.Directory.Source),
		)
		if err := a.httpSrv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return a.shutdown(context.Background())
		}
		_ = a.shutdown(context.Background())
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	for _, id := range a.host.IDs() {
		_ = a.host.Unmount(id)
	}

	if a.pool != nil {
		a.pool.Close()
	}

	return nil
}

// openSource builds the configured directory source. The pool is non-nil
// only for the postgres source and must be closed by the caller.
func openSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (directory.Source, *pgxpool.Pool, error) {
	switch cfg.Directory.Source {
	case config.SourcePostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}

		if cfg.DB.AutoMigrate {
			if err := database.UpMigrations(ctx, pool, database.MigrationSource(cfg.DB.MigrationsDir)); err != nil {
				pool.Close()
				return nil, nil, err
			}
			logger.Info("database migrations applied", slog.String("dir", cfg.DB.MigrationsDir))
		}

		return repository.NewEmployeeRepository(pool), pool, nil
	case config.SourceREST:
		src, err := directory.NewRESTSource(cfg.Directory.RESTURL, cfg.Directory.RESTToken, cfg.Directory.RESTTimeout, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("build rest directory source: %w", err)
		}
		return src, nil, nil
	case config.SourceStatic:
		src, err := directory.LoadStaticSource(cfg.Directory.StaticFile, logger)
		if err != nil {
			return nil, nil, err
		}
		return src, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported directory source %q", cfg.Directory.Source)
	}
}

func widgetDefaults(cfg config.Config) (domain.WidgetSettings, directory.WeekPolicy, error) {
	r, err := domain.ParseDateRange(cfg.Widget.Range)
	if err != nil {
		return domain.WidgetSettings{}, 0, fmt.Errorf("WIDGET_RANGE: %w", err)
	}

	policy, err := directory.ParseWeekPolicy(cfg.Widget.WeekPolicy)
	if err != nil {
		return domain.WidgetSettings{}, 0, fmt.Errorf("WIDGET_WEEK_POLICY: %w", err)
	}

	settings := domain.WidgetSettings{
		MaxItems: cfg.Widget.MaxItems,
		Range:    r,
		Title:    cfg.Widget.Title,
		MoreLink: cfg.Widget.MoreLink,
	}
	return settings.Normalize(), policy, nil
}

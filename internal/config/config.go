package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourcePostgres = "postgres"
	SourceREST     = "rest"
	SourceStatic   = "static"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        DBConfig
	Directory DirectoryConfig
	Widget    WidgetConfig
	Labels    LabelsConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Timezone    string
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	URL             string
	MaxOpenConns    int
	MinIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsDir   string
	AutoMigrate     bool
}

type DirectoryConfig struct {
	Source      string
	RESTURL     string
	RESTToken   string
	RESTTimeout time.Duration
	StaticFile  string
}

// WidgetConfig seeds the default widget the host mounts on startup.
type WidgetConfig struct {
	Title      string
	MaxItems   int
	Range      string
	MoreLink   string
	WeekPolicy string
}

type LabelsConfig struct {
	Loading string
	Empty   string
	SeeAll  string
	Year    string
	Years   string
}

type SchedulerConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

func Load() (Config, error) {
	// Load .env file if it exists (ignore error for production where env vars are set directly)
	_ = godotenv.Load()

	cfg := Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "anniversaries"),
			Environment: getEnv("APP_ENV", "development"),
			Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "9060"),
		},
		DB: DBConfig{
			URL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
			MinIdleConns:    getInt("DB_MIN_IDLE_CONNS", 1),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			MigrationsDir:   strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
			AutoMigrate:     getBool("MIGRATIONS_AUTO_APPLY", true),
		},
		Directory: DirectoryConfig{
			Source:      strings.ToLower(getEnv("DIRECTORY_SOURCE", SourcePostgres)),
			RESTURL:     strings.TrimSpace(os.Getenv("DIRECTORY_REST_URL")),
			RESTToken:   strings.TrimSpace(os.Getenv("DIRECTORY_REST_TOKEN")),
			RESTTimeout: getDuration("DIRECTORY_REST_TIMEOUT", 12*time.Second),
			StaticFile:  getEnv("DIRECTORY_STATIC_FILE", "directory.yaml"),
		},
		Widget: WidgetConfig{
			Title:      getEnv("WIDGET_TITLE", "Work Anniversaries"),
			MaxItems:   getInt("WIDGET_MAX_ITEMS", 5),
			Range:      getEnv("WIDGET_RANGE", "Day"),
			MoreLink:   strings.TrimSpace(os.Getenv("WIDGET_MORE_LINK")),
			WeekPolicy: getEnv("WIDGET_WEEK_POLICY", "rolling"),
		},
		Labels: LabelsConfig{
			Loading: getEnv("LABEL_LOADING", "Loading ..."),
			Empty:   getEnv("LABEL_EMPTY", "No anniversaries found at this."),
			SeeAll:  getEnv("LABEL_SEE_ALL", "See all"),
			Year:    getEnv("LABEL_YEAR", "year"),
			Years:   getEnv("LABEL_YEARS", "years"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getBool("SCHEDULER_ENABLED", true),
			PollInterval: getDuration("SCHEDULER_POLL_INTERVAL", time.Minute),
		},
	}

	switch cfg.Directory.Source {
	case SourcePostgres:
		if cfg.DB.URL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres directory source")
		}
	case SourceREST:
		if cfg.Directory.RESTURL == "" {
			return Config{}, fmt.Errorf("DIRECTORY_REST_URL is required for the rest directory source")
		}
	case SourceStatic:
	default:
		return Config{}, fmt.Errorf("DIRECTORY_SOURCE must be one of postgres|rest|static, got %q", cfg.Directory.Source)
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getBool(key string, fallback bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

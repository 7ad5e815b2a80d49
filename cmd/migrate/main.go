package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"anniversaries/internal/config"
	"anniversaries/internal/database"
	"anniversaries/internal/directory"
	"anniversaries/internal/repository"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.OpenPostgres(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	src := database.MigrationSource(cfg.DB.MigrationsDir)

	switch cmd {
	case "up":
		err = database.UpMigrations(ctx, pool, src)
	case "down":
		err = database.DownOneMigration(ctx, pool, src)
	case "status":
		status, statusErr := database.MigrationStatus(ctx, pool, src)
		if statusErr == nil {
			fmt.Println(status)
		}
		err = statusErr
	case "seed":
		path := cfg.Directory.StaticFile
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		err = seed(ctx, repository.NewEmployeeRepository(pool), path)
	case "deactivate":
		if len(os.Args) < 3 {
			log.Fatalf("usage: migrate deactivate <email>")
		}
		err = repository.NewEmployeeRepository(pool).Deactivate(ctx, os.Args[2])
	default:
		log.Fatalf("unsupported command %q (use up|down|status|seed|deactivate)", cmd)
	}

	if err != nil {
		log.Fatalf("migration command failed: %v", err)
	}

	fmt.Printf("migration command %q completed\n", cmd)
}

// seed upserts every employee of a YAML directory file into Postgres.
func seed(ctx context.Context, repo *repository.EmployeeRepository, path string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	static, err := directory.LoadStaticSource(path, logger)
	if err != nil {
		return err
	}

	seeded := 0
	for _, rec := range static.Employees() {
		hired, err := directory.ParseHireDate(rec.HireDate)
		if err != nil {
			logger.Warn("skipping employee without a usable hire date",
				slog.String("identity", rec.Identity),
				slog.String("hire_date", rec.HireDate),
			)
			continue
		}
		if err := repo.Upsert(ctx, rec, hired); err != nil {
			return err
		}
		seeded++
	}

	logger.Info("directory seeded", slog.String("path", path), slog.Int("employees", seeded))
	return nil
}

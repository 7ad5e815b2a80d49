package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

type migrationFile struct {
	Version  int64
	Name     string
	UpPath   string
	DownPath string
}

// MigrationSource returns the migrations directory when one is configured
// and present on disk, otherwise the migrations compiled into the binary.
func MigrationSource(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

func UpMigrations(ctx context.Context, pool *pgxpool.Pool, src fs.FS) error {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	migrations, err := loadMigrations(src)
	if err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, pool)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		content, err := fs.ReadFile(src, m.UpPath)
		if err != nil {
			return fmt.Errorf("read up migration %s: %w", m.UpPath, err)
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("apply up migration %d: %w", m.Version, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name); err != nil {
				return fmt.Errorf("record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func DownOneMigration(ctx context.Context, pool *pgxpool.Pool, src fs.FS) error {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	migrations, err := loadMigrations(src)
	if err != nil {
		return err
	}

	version, err := currentVersion(ctx, pool)
	if err != nil {
		return err
	}
	if version == 0 {
		return nil
	}

	var target *migrationFile
	for i := range migrations {
		if migrations[i].Version == version {
			target = &migrations[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("down migration file not found for version %d", version)
	}
	if target.DownPath == "" {
		return fmt.Errorf("down migration missing for version %d", version)
	}

	content, err := fs.ReadFile(src, target.DownPath)
	if err != nil {
		return fmt.Errorf("read down migration %s: %w", target.DownPath, err)
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply down migration %d: %w", target.Version, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, target.Version); err != nil {
			return fmt.Errorf("delete migration record %d: %w", target.Version, err)
		}
		return nil
	})
}

func MigrationStatus(ctx context.Context, pool *pgxpool.Pool, src fs.FS) (string, error) {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return "", err
	}

	migrations, err := loadMigrations(src)
	if err != nil {
		return "", err
	}

	version, err := currentVersion(ctx, pool)
	if err != nil {
		return "", err
	}

	latest := int64(0)
	if len(migrations) > 0 {
		latest = migrations[len(migrations)-1].Version
	}

	return fmt.Sprintf("current=%d latest=%d", version, latest), nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`
	if _, err := pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}
	return nil
}

func currentVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var version int64
	if err := pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, fmt.Errorf("read current migration version: %w", err)
	}
	return version, nil
}

func appliedVersions(ctx context.Context, pool *pgxpool.Pool) (map[int64]bool, error) {
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}

	versions, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan applied versions: %w", err)
	}

	out := make(map[int64]bool, len(versions))
	for _, v := range versions {
		out[v] = true
	}
	return out, nil
}

func loadMigrations(src fs.FS) ([]migrationFile, error) {
	entries, err := fs.ReadDir(src, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	byVersion := make(map[int64]migrationFile)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		filename := entry.Name()
		isUp := strings.HasSuffix(filename, ".up.sql")
		isDown := strings.HasSuffix(filename, ".down.sql")
		if !isUp && !isDown {
			continue
		}

		prefix, _, found := strings.Cut(filename, "_")
		if !found {
			continue
		}
		version, err := strconv.ParseInt(prefix, 10, 64)
		if err != nil {
			continue
		}

		m := byVersion[version]
		m.Version = version
		if isUp {
			m.Name = filename
			m.UpPath = filename
		} else {
			m.DownPath = filename
		}
		byVersion[version] = m
	}

	migrations := make([]migrationFile, 0, len(byVersion))
	for _, m := range byVersion {
		if m.UpPath == "" {
			return nil, fmt.Errorf("missing up migration for version %d", m.Version)
		}
		migrations = append(migrations, m)
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

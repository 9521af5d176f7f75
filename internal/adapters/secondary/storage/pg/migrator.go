package pg

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"log/slog"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migration struct {
	Version int64
	Name    string
	Content string
}

// RunMigrations применяет встроенные миграции, уже применённые версии пропускаются
func RunMigrations(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	migrations, err := loadMigrations(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	return applyMigrations(ctx, db, migrations, logger)
}

func applyMigrations(ctx context.Context, db *sqlx.DB, migrations []migration, logger *slog.Logger) error {
	logger.Info("starting database migrations", "total", len(migrations))

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version BIGINT NOT NULL PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var currentVersion int64
	if err := db.GetContext(ctx, &currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations"); err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		if m.Version <= currentVersion {
			logger.Debug("migration already applied", "version", m.Version, "name", m.Name)
			continue
		}

		logger.Info("applying migration", "version", m.Version, "name", m.Name)
		if err := applyMigration(ctx, db, m); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		applied++
	}

	logger.Info("database migrations completed",
		"applied", applied,
		"version", max(currentVersion, lastVersion(migrations)),
	)
	return nil
}

// applyMigration выполняет SQL и записывает версию в одной транзакции
func applyMigration(ctx context.Context, db *sqlx.DB, m migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Content); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// loadMigrations читает SQL файлы из dir и сортирует их по версии
func loadMigrations(fsys fs.FS, dir string) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, name, err := parseMigrationName(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid migration name %s: %w", entry.Name(), err)
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, migration{
			Version: version,
			Name:    name,
			Content: string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// parseMigrationName парсит имя файла миграции (формат: 0001_name.sql)
func parseMigrationName(filename string) (int64, string, error) {
	name := strings.TrimSuffix(filename, ".sql")

	parts := strings.SplitN(name, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", fmt.Errorf("invalid format: expected NNNN_name.sql")
	}

	version, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}

	return version, parts[1], nil
}

func lastVersion(migrations []migration) int64 {
	if len(migrations) == 0 {
		return 0
	}
	return migrations[len(migrations)-1].Version
}

package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed *.sql
var shipped embed.FS

var (
	ErrDuplicateVersion = errors.New("duplicate migration version")
	ErrEmptyMigration   = errors.New("empty migration")
)

// Migration is one versioned SQL file, named like "001_create_conversions.sql".
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Source returns the migrations in dir, or the ones compiled into the
// binary when dir is empty.
func Source(dir string) fs.FS {
	if dir == "" {
		return shipped
	}
	return os.DirFS(dir)
}

// RunMigrations applies every migration in fsys that schema_migrations
// does not list yet, in version order, each in its own transaction.
func RunMigrations(db *sql.DB, fsys fs.FS) error {
	migrations, err := readMigrationFiles(fsys)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		log.Printf("Applying migration %03d_%s", m.Version, m.Name)
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("failed to apply migration %03d_%s: %w", m.Version, m.Name, err)
		}
		count++
	}

	log.Printf("Conversion history schema up to date, %d of %d migrations applied now", count, len(migrations))
	return nil
}

func createMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`)
	return err
}

func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// readMigrationFiles loads the *.sql files at the root of fsys sorted by
// version. Files without a numeric "NNN_" prefix are skipped; two files
// sharing a version or a file holding no SQL are errors.
func readMigrationFiles(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	seen := make(map[int]string)
	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		version, name, ok := parseFileName(entry.Name())
		if !ok {
			log.Printf("Warning: skipping %s, want NNN_name.sql", entry.Name())
			continue
		}
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("%w %d: %s and %s", ErrDuplicateVersion, version, other, entry.Name())
		}
		seen[version] = entry.Name()

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyMigration, entry.Name())
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	slices.SortFunc(migrations, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return migrations, nil
}

func parseFileName(file string) (int, string, bool) {
	prefix, name, found := strings.Cut(strings.TrimSuffix(file, ".sql"), "_")
	if !found || name == "" {
		return 0, "", false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, "", false
	}
	return version, name, true
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name); err != nil {
		return err
	}
	return tx.Commit()
}

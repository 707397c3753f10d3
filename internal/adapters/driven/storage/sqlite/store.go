package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Y3454R/obadh-engine/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Y3454R/obadh-engine/internal/core/domain"
	"github.com/Y3454R/obadh-engine/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ExceptionStore = (*Store)(nil)

// Store is a SQLite-backed exception dictionary store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.obadh/data/obadh.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".obadh", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "obadh.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores or updates an exception.
func (s *Store) Save(ctx context.Context, exception domain.Exception) error {
	if exception.ID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if exception.CreatedAt.IsZero() {
		exception.CreatedAt = now
	}
	if exception.UpdatedAt.IsZero() {
		exception.UpdatedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exceptions (id, roman, bengali, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			roman = excluded.roman,
			bengali = excluded.bengali,
			note = excluded.note,
			updated_at = excluded.updated_at
	`, exception.ID, exception.Roman, exception.Bengali, exception.Note,
		exception.CreatedAt, exception.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving exception: %w", err)
	}
	return nil
}

// Get retrieves an exception by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Exception, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, roman, bengali, note, created_at, updated_at
		FROM exceptions WHERE id = ?
	`, id)

	return scanException(row)
}

// GetByRoman retrieves an exception by its exact Roman form.
func (s *Store) GetByRoman(ctx context.Context, roman string) (*domain.Exception, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, roman, bengali, note, created_at, updated_at
		FROM exceptions WHERE roman = ?
	`, roman)

	return scanException(row)
}

// Delete removes an exception by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM exceptions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting exception: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all exceptions ordered by Roman form.
func (s *Store) List(ctx context.Context) ([]domain.Exception, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, roman, bengali, note, created_at, updated_at
		FROM exceptions ORDER BY roman
	`)
	if err != nil {
		return nil, fmt.Errorf("querying exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []domain.Exception
	for rows.Next() {
		var exc domain.Exception
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&exc.ID, &exc.Roman, &exc.Bengali, &exc.Note,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning exception: %w", err)
		}
		if createdAt.Valid {
			exc.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			exc.UpdatedAt = updatedAt.Time
		}
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exceptions: %w", err)
	}

	return exceptions, nil
}

// Count returns the number of stored exceptions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exceptions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting exceptions: %w", err)
	}
	return count, nil
}

// scanException scans a single exception row.
func scanException(row *sql.Row) (*domain.Exception, error) {
	var exc domain.Exception
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&exc.ID, &exc.Roman, &exc.Bengali, &exc.Note,
		&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning exception: %w", err)
	}

	if createdAt.Valid {
		exc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		exc.UpdatedAt = updatedAt.Time
	}

	return &exc, nil
}

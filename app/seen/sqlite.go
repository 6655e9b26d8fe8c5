package seen

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the record in a seen_items table ordered by position.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT identifier FROM seen_items ORDER BY position`)
	if err != nil {
		return NewRecord(nil), &StoreIOError{Location: s.path, Err: err}
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return NewRecord(nil), &StoreIOError{Location: s.path, Err: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return NewRecord(nil), &StoreIOError{Location: s.path, Err: err}
	}

	return NewRecord(ids), nil
}

func (s *SQLiteStore) Save(ctx context.Context, record *Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seen_items`); err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO seen_items (position, identifier) VALUES (?, ?)`)
	if err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}
	defer stmt.Close()

	for i, id := range record.IDs() {
		if _, err := stmt.ExecContext(ctx, i+1, id); err != nil {
			return &StoreWriteError{Location: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreWriteError{Location: s.path, Err: err}
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

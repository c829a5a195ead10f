package funfact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS fun_facts (
	id         TEXT PRIMARY KEY,
	state_code TEXT NOT NULL UNIQUE,
	funfacts   TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore handles storage of fun fact records in an embedded SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path. Use ":memory:" for a
// throwaway database
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serializes writers and keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// GetRecord retrieves the record for a state code
func (s *SQLiteStore) GetRecord(ctx context.Context, code string) (*funfact.Record, error) {
	return getSQLiteRecord(ctx, s.db, funfact.NormalizeCode(code))
}

// ListRecords returns all stored records ordered by state code
func (s *SQLiteStore) ListRecords(ctx context.Context) ([]*funfact.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT state_code, funfacts FROM fun_facts ORDER BY state_code")
	if err != nil {
		return nil, fmt.Errorf("failed to list fun facts: %w", err)
	}
	defer rows.Close()

	records := []*funfact.Record{}
	for rows.Next() {
		var code string
		var facts FactList
		if err := rows.Scan(&code, &facts); err != nil {
			return nil, fmt.Errorf("failed to scan fun facts: %w", err)
		}
		records = append(records, &funfact.Record{StateCode: code, Funfacts: []string(facts)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list fun facts: %w", err)
	}

	return records, nil
}

// Mutate applies fn to the record inside a single transaction
func (s *SQLiteStore) Mutate(ctx context.Context, code string, fn funfact.MutateFunc) (*funfact.Record, error) {
	code = funfact.NormalizeCode(code)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getSQLiteRecord(ctx, tx, code)
	if err != nil && !errors.Is(err, funfact.ErrRecordNotFound) {
		return nil, err
	}

	facts, err := fn(existing)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if existing == nil {
		// Create new record
		_, err = tx.ExecContext(ctx,
			"INSERT INTO fun_facts (id, state_code, funfacts, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			uuid.New().String(), code, FactList(facts), now, now,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create fun facts: %w", err)
		}
	} else {
		// Update existing record
		_, err = tx.ExecContext(ctx,
			"UPDATE fun_facts SET funfacts = ?, updated_at = ? WHERE state_code = ?",
			FactList(facts), now, code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update fun facts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fun facts: %w", err)
	}

	saved := &funfact.Record{StateCode: code, Funfacts: make([]string, len(facts))}
	copy(saved.Funfacts, facts)
	return saved, nil
}

// Ping checks the database connection
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// queryRower is satisfied by both *sql.DB and *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSQLiteRecord(ctx context.Context, q queryRower, code string) (*funfact.Record, error) {
	var facts FactList
	err := q.QueryRowContext(ctx, "SELECT funfacts FROM fun_facts WHERE state_code = ?", code).Scan(&facts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, funfact.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get fun facts: %w", err)
	}

	return &funfact.Record{StateCode: code, Funfacts: []string(facts)}, nil
}

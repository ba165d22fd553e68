// Package history persists saved calculations in a SQLite database and
// serves them back newest first, scoped to the owning user.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/printquote/printquote/internal/model"
)

// ErrNotFound is returned when a record id does not exist in the store.
var ErrNotFound = errors.New("history: record not found")

// Store is a quote history backed by a SQL database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dbPath with the recommended pragmas and
// validates connectivity. The caller runs migrations and closes the handle.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append inserts a record and returns its id.
func (s *Store) Append(record model.HistoryRecord) (string, error) {
	inputJSON, err := json.Marshal(record.Input)
	if err != nil {
		return "", fmt.Errorf("marshal input: %w", err)
	}
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (id, owner_id, product_name, selling_price, created_at, input_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.OwnerID,
		record.Input.ProductName,
		record.Result.SellingPrice,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(inputJSON),
		string(resultJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert quote: %w", err)
	}

	return record.ID, nil
}

// List returns every record belonging to ownerID, newest first.
func (s *Store) List(ownerID string) ([]model.HistoryRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, created_at, input_json, result_json
		FROM quotes
		WHERE owner_id = ?
		ORDER BY datetime(created_at) DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	records := make([]model.HistoryRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return records, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (model.HistoryRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, created_at, input_json, result_json
		FROM quotes
		WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HistoryRecord{}, ErrNotFound
	}
	if err != nil {
		return model.HistoryRecord{}, err
	}
	return record, nil
}

// Delete removes the record with the given id. Returns ErrNotFound when the
// id does not exist.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (model.HistoryRecord, error) {
	var record model.HistoryRecord
	var createdAt, inputJSON, resultJSON string

	if err := sc.Scan(&record.ID, &record.OwnerID, &createdAt, &inputJSON, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.HistoryRecord{}, err
		}
		return model.HistoryRecord{}, fmt.Errorf("scan quote: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.HistoryRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	record.CreatedAt = parsed

	if err := json.Unmarshal([]byte(inputJSON), &record.Input); err != nil {
		return model.HistoryRecord{}, fmt.Errorf("unmarshal input: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &record.Result); err != nil {
		return model.HistoryRecord{}, fmt.Errorf("unmarshal result: %w", err)
	}

	return record, nil
}

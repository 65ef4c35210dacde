package training

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personaltrainer/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new training store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Dates are stored as RFC 3339 text.
const dateFormat = time.RFC3339

// GetByID retrieves a training by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, customer_id, date, duration, activity FROM training WHERE id = ?", id)

	entity, err := scan(row)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("training not found: %w", err)
	}
	return entity, err
}

// List retrieves all trainings ordered by start date.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, customer_id, date, duration, activity FROM training ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		entity, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, rows.Err()
}

// Save persists a training (insert or full replace).
// PRE: entity.ID and entity.CustomerID are non-empty
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training (id, customer_id, date, duration, activity) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			customer_id = excluded.customer_id,
			date = excluded.date,
			duration = excluded.duration,
			activity = excluded.activity`,
		entity.ID, entity.CustomerID, entity.Date.UTC().Format(dateFormat),
		entity.Duration, entity.Activity,
	)
	return err
}

// Delete removes a training by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM training WHERE id = ?", id)
	return err
}

// CountByCustomer returns how many trainings reference the customer.
// Used to refuse deleting a customer that still owns sessions.
func (s *SQLiteStore) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM training WHERE customer_id = ?", customerID).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Record, error) {
	var entity Record
	var date string
	err := row.Scan(&entity.ID, &entity.CustomerID, &date, &entity.Duration, &entity.Activity)
	if err != nil {
		return Record{}, err
	}
	entity.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return Record{}, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	return entity, nil
}

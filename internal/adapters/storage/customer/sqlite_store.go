package customer

import (
	"context"
	"database/sql"
	"fmt"

	"personaltrainer/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new customer store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = "id, firstname, lastname, streetaddress, postcode, city, email, phone"

// GetByID retrieves a customer by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM customer WHERE id = ?", id)
	entity, err := scan(row)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("customer not found: %w", err)
	}
	return entity, err
}

// List retrieves all customers ordered by last then first name.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+columns+" FROM customer ORDER BY lastname, firstname")
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

// Save persists a customer (insert or full replace).
// PRE: entity.ID is non-empty
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO customer (`+columns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			firstname = excluded.firstname,
			lastname = excluded.lastname,
			streetaddress = excluded.streetaddress,
			postcode = excluded.postcode,
			city = excluded.city,
			email = excluded.email,
			phone = excluded.phone`,
		entity.ID, entity.Firstname, entity.Lastname, entity.Streetaddress,
		entity.Postcode, entity.City, entity.Email, entity.Phone,
	)
	return err
}

// Delete removes a customer by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM customer WHERE id = ?", id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Record, error) {
	var entity Record
	err := row.Scan(
		&entity.ID,
		&entity.Firstname,
		&entity.Lastname,
		&entity.Streetaddress,
		&entity.Postcode,
		&entity.City,
		&entity.Email,
		&entity.Phone,
	)
	return entity, err
}

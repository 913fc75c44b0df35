package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculation_history (
	id             uuid PRIMARY KEY,
	user_id        text NOT NULL,
	operation_type text NOT NULL,
	input_data     jsonb NOT NULL,
	result_data    jsonb NOT NULL,
	created_at     timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS calculation_history_user_created_idx
	ON calculation_history (user_id, created_at DESC);
`

// PostgresStore keeps records in the calculation_history table.
type PostgresStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenPostgres connects with a lib/pq DSN, checks the connection and
// creates the table when missing.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ping postgres: %w", err)
	}
	s := NewPostgresStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an existing handle. The caller runs Migrate.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("history: migrate: %w", pgErr(err))
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, kind Kind, input, result any) (Record, error) {
	rec, err := newRecord(userID, kind, input, result, s.now())
	if err != nil {
		return Record{}, err
	}
	// jsonb parameters go over the wire as text; []byte would be sent as bytea.
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calculation_history (id, user_id, operation_type, input_data, result_data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.UserID, string(rec.Kind), string(rec.Input), string(rec.Result), rec.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("history: insert: %w", pgErr(err))
	}
	return rec, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, operation_type, input_data, result_data, created_at
		 FROM calculation_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", pgErr(err))
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r         Record
			kind      string
			in, res   []byte
			createdAt time.Time
		)
		if err := rows.Scan(&r.ID, &r.UserID, &kind, &in, &res, &createdAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		r.Kind = Kind(kind)
		r.Input = append([]byte(nil), in...)
		r.Result = append([]byte(nil), res...)
		r.CreatedAt = createdAt.UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list: %w", pgErr(err))
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, id string) error {
	// A malformed id cannot match a uuid column; report it as missing rather
	// than surfacing the server's cast error.
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM calculation_history WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("history: delete: %w", pgErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("history: delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

// pgErr annotates server errors with their SQLSTATE code.
func pgErr(err error) error {
	var pe *pq.Error
	if errors.As(err, &pe) {
		return fmt.Errorf("%s (%s): %w", pe.Code.Name(), pe.Code, err)
	}
	return err
}

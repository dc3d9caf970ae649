package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Transactor runs a function inside a single all-or-nothing transaction.
type Transactor interface {
	// Transaction begins a transaction, calls fn with a context bound to it,
	// commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result reports the outcome of a mutating statement.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Row is one result row as an ordered column -> value mapping.
type Row struct {
	columns []string
	values  []any
}

// NewRow builds a Row from parallel column and value slices.
func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

// Columns returns the column names in select order.
func (r Row) Columns() []string {
	return r.columns
}

// Value returns the raw driver value for col.
func (r Row) Value(col string) (any, bool) {
	for i, c := range r.columns {
		if c == col {
			return r.values[i], true
		}
	}
	return nil, false
}

// Int64 returns col as an integer.
func (r Row) Int64(col string) (int64, error) {
	v, ok := r.Value(col)
	if !ok {
		return 0, fmt.Errorf("column %s not in row", col)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("column %s: unexpected type %T", col, v)
	}
}

// String returns col as text. NULL is returned as the empty string.
func (r Row) String(col string) (string, error) {
	s, err := r.NullString(col)
	if err != nil || s == nil {
		return "", err
	}
	return *s, nil
}

// NullString returns col as text, or nil when the value is NULL.
func (r Row) NullString(col string) (*string, error) {
	v, ok := r.Value(col)
	if !ok {
		return nil, fmt.Errorf("column %s not in row", col)
	}
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &s, nil
	case []byte:
		str := string(s)
		return &str, nil
	default:
		return nil, fmt.Errorf("column %s: unexpected type %T", col, v)
	}
}

// Time returns col as a timestamp. The driver may hand back either a parsed
// time or the raw DATETIME text depending on the declared column type.
func (r Row) Time(col string) (time.Time, error) {
	v, ok := r.Value(col)
	if !ok {
		return time.Time{}, fmt.Errorf("column %s not in row", col)
	}
	switch t := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return t, nil
	case string:
		return parseTimestamp(t)
	case []byte:
		return parseTimestamp(string(t))
	default:
		return time.Time{}, fmt.Errorf("column %s: unexpected type %T", col, v)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
		}
	}
	return t, nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type txKey struct{}

// Store is the row store adapter over a SQLite handle. Statements run on the
// transaction bound to the context when there is one, and auto-commit
// otherwise.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return &DatabaseError{Op: "ping", Err: ErrNotConnected}
	}
	if err := s.db.PingContext(ctx); err != nil {
		return &DatabaseError{Op: "ping", Err: err}
	}
	return nil
}

// InTransaction reports whether ctx carries an open transaction scope.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

func (s *Store) conn(ctx context.Context) (querier, error) {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx, nil
	}
	if s == nil || s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db, nil
}

// Exec runs a mutating statement.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	q, err := s.conn(ctx)
	if err != nil {
		return Result{}, &DatabaseError{Op: "exec", Err: err}
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, &DatabaseError{Op: "exec", Err: err}
	}

	var out Result
	// SQLite always supports both; errors here would only come from the driver.
	if out.LastInsertID, err = res.LastInsertId(); err != nil {
		return Result{}, &DatabaseError{Op: "exec", Err: err}
	}
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return Result{}, &DatabaseError{Op: "exec", Err: err}
	}
	return out, nil
}

// FetchOne runs a query and returns its first row.
// Returns ErrNotFound if the query yields no rows.
func (s *Store) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.fetch(ctx, "fetch one", query, args, 1)
	if err != nil {
		return Row{}, err
	}
	if len(rows) == 0 {
		return Row{}, ErrNotFound
	}
	return rows[0], nil
}

// FetchAll runs a query and returns every row.
// Returns an empty slice if the query yields no rows (not an error).
func (s *Store) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	return s.fetch(ctx, "fetch all", query, args, 0)
}

func (s *Store) fetch(ctx context.Context, op, query string, args []any, limit int) ([]Row, error) {
	q, err := s.conn(ctx)
	if err != nil {
		return nil, &DatabaseError{Op: op, Err: err}
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &DatabaseError{Op: op, Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &DatabaseError{Op: op, Err: err}
	}

	out := []Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &DatabaseError{Op: op, Err: fmt.Errorf("failed to scan row: %w", err)}
		}
		out = append(out, Row{columns: columns, values: values})
		if limit > 0 && len(out) == limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, &DatabaseError{Op: op, Err: fmt.Errorf("row iteration error: %w", err)}
	}

	return out, nil
}

// Transaction runs fn inside a transaction. A call made while a transaction
// is already bound to ctx joins it instead of opening a new one, so the
// outermost caller decides when the work commits.
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	if s == nil || s.db == nil {
		return &DatabaseError{Op: "begin", Err: ErrNotConnected}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &DatabaseError{Op: "begin", Err: err}
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, &DatabaseError{Op: "rollback", Err: rbErr})
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return &DatabaseError{Op: "commit", Err: err}
	}
	return nil
}

// Package postgres opens the database, applies the schema and runs units of work.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"carenest/internal/platform/config"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

const (
	defaultTxTimeout      = 5 * time.Second
	uniqueViolationCode   = "23505"
	constraintFieldSuffix = "_key"
)

// Open connects through the pgx stdlib driver and pings the server.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn returns the transaction carried by ctx, or db outside a unit of work.
func Conn(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

// InTx reports whether ctx carries a transaction, so stores know when row locks apply.
func InTx(ctx context.Context) bool {
	_, ok := txcontext.From(ctx)
	return ok
}

// Transactor runs units of work in a sql.Tx with a default timeout.
type Transactor struct {
	db      *sql.DB
	timeout time.Duration
}

func NewTransactor(db *sql.DB, timeout time.Duration) *Transactor {
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &Transactor{db: db, timeout: timeout}
}

func (t *Transactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// MapError converts driver errors into store sentinels: no rows becomes
// ErrNotFound and unique violations become a Duplicate naming the column.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return sentinel.Duplicate(fieldFromConstraint(pgErr.TableName, pgErr.ConstraintName))
	}
	return err
}

// fieldFromConstraint turns "caregivers_aadhaar_number_key" into "aadhaar_number".
func fieldFromConstraint(table, constraint string) string {
	field := strings.TrimSuffix(constraint, constraintFieldSuffix)
	if table != "" {
		field = strings.TrimPrefix(field, table+"_")
	}
	return field
}

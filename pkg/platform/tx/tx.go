// Package tx carries transaction scope through context so stores from different
// modules can join one unit of work.
package tx

import (
	"context"
	"database/sql"
	"sync"
)

type ctxKey struct{}

var txKey = ctxKey{}

type memKey struct{}

// Transactor runs fn atomically. Stores called with the ctx passed to fn
// participate in the same transaction.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Memory serializes units of work against the in-memory stores with one coarse
// lock. Nested calls on the same context run inline. Stores register undo steps
// with OnRollback; a failed unit of work replays them newest first.
type Memory struct {
	mu sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{}
}

type memTx struct {
	owner *Memory
	undo  []func()
}

func (m *Memory) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(memKey{}).(*memTx); ok && tx.owner == m {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{owner: m}
	if err := fn(context.WithValue(ctx, memKey{}, tx)); err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

// OnRollback records undo against the in-memory unit of work carried by ctx.
// Outside one it does nothing, so the write stands.
func OnRollback(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(memKey{}).(*memTx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

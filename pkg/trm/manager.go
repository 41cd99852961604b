package trm

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// Querier is the subset of *sqlx.DB and *sqlx.Tx repositories use.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Conn returns the transaction carried by ctx, or db when there is none.
func Conn(ctx context.Context, db *sqlx.DB) Querier {
	if tx := ExtractTx(ctx); tx != nil {
		return tx
	}
	return db
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return nil, nil, err
	}
	return withTx(ctx, tx), tx, nil
}

// Do runs callback in a transaction. A callback already running inside one
// joins it instead of opening a nested transaction.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// Package dbx holds the database plumbing shared by every repository:
// the handle interface repositories are written against, and a
// transaction wrapper for flows that write more than one table.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the common query surface of *sql.DB and *sql.Tx. Repository
// factories take it instead of a concrete handle, so the same queries
// run against the shared connection or inside WithTx unchanged.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: committed when fn returns nil,
// rolled back when it returns an error or panics (the panic is rethrown
// after the rollback). Registration relies on it to create a user
// account and its student record together:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if _, err := repos.Users(tx).Create(ctx, user); err != nil {
//	        return err
//	    }
//	    _, err := repos.Students(tx).Create(ctx, record)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return
}

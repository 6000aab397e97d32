// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// # Transactions

// InTx runs fn inside a single transaction.
//
// The transaction commits only if fn returns nil. An error or a panic in fn
// rolls it back; the panic is then re-raised.
func InTx(ctx context.Context, db DB, fn func(transaction pgx.Tx) error) error {
	transaction, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = transaction.Rollback(ctx)
			panic(recovered)
		}
	}()

	if err := fn(transaction); err != nil {
		_ = transaction.Rollback(ctx)
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}
	return nil
}

// # Batch Execution

// Statement is one parameterised SQL command in a batch.
type Statement struct {
	SQL  string
	Args []any
}

// BatchResult reports the outcome of every statement of a committed batch,
// in submission order.
type BatchResult struct {
	RowsAffected []int64
}

// Batcher executes statement batches as one transaction.
type Batcher struct {
	db DB
}

// NewBatcher constructs a [Batcher] over the given pool.
func NewBatcher(db DB) *Batcher {
	return &Batcher{db: db}
}

/*
ExecBatch applies every statement in one transaction, in order.

Description: The statements are queued on a single [pgx.Batch] and sent in
one round trip. Either all of them commit and the result carries one row
count per statement, or the transaction is rolled back and an error is
returned. A statement matching zero rows is not an error.

Parameters:
  - ctx: context.Context
  - statements: []Statement

Returns:
  - BatchResult: Row counts, only meaningful when err is nil
  - error: First statement failure, or begin/commit failure
*/
func (batcher *Batcher) ExecBatch(ctx context.Context, statements []Statement) (BatchResult, error) {
	batch := &pgx.Batch{}
	for _, statement := range statements {
		batch.Queue(statement.SQL, statement.Args...)
	}

	rows := make([]int64, 0, len(statements))

	err := InTx(ctx, batcher.db, func(transaction pgx.Tx) error {
		results := transaction.SendBatch(ctx, batch)

		for index := range statements {
			tag, err := results.Exec()
			if err != nil {
				_ = results.Close()
				return fmt.Errorf("postgres: batch statement %d failed: %w", index, err)
			}
			rows = append(rows, tag.RowsAffected())
		}

		// The connection is unusable for Commit until the results are closed.
		if err := results.Close(); err != nil {
			return fmt.Errorf("postgres: failed to close batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}

	return BatchResult{RowsAffected: rows}, nil
}

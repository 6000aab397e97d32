// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package postgrestest adapts pgxmock pools for code that sends [pgx.Batch] values.

pgxmock does not model batches, so [WithBatches] replays every queued
statement as a plain Exec on the mock. Tests keep writing ordinary
ExpectBegin, ExpectExec, ExpectCommit and ExpectRollback expectations.
*/
package postgrestest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

var (
	errBatchClosed    = errors.New("postgrestest: batch already closed")
	errBatchExhausted = errors.New("postgrestest: no more results in batch")
)

// Pool is a pgxmock pool whose transactions accept batches.
type Pool struct {
	pgxmock.PgxPoolIface
}

// WithBatches wraps mock. Expectations are still set on mock itself.
func WithBatches(mock pgxmock.PgxPoolIface) *Pool {
	return &Pool{PgxPoolIface: mock}
}

// BeginTx starts a mock transaction that can replay batches.
func (pool *Pool) BeginTx(ctx context.Context, options pgx.TxOptions) (pgx.Tx, error) {
	transaction, err := pool.PgxPoolIface.BeginTx(ctx, options)
	if err != nil {
		return nil, err
	}
	return &batchTx{Tx: transaction}, nil
}

type batchTx struct {
	pgx.Tx
}

func (transaction *batchTx) SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults {
	return &replay{ctx: ctx, transaction: transaction.Tx, queued: batch.QueuedQueries}
}

// replay reads batch results one Exec at a time. Query and QueryRow are not supported.
type replay struct {
	pgx.BatchResults

	ctx         context.Context
	transaction pgx.Tx
	queued      []*pgx.QueuedQuery
	next        int
	closed      bool
}

func (results *replay) Exec() (pgconn.CommandTag, error) {
	if results.closed {
		return pgconn.CommandTag{}, errBatchClosed
	}
	if results.next >= len(results.queued) {
		return pgconn.CommandTag{}, errBatchExhausted
	}

	query := results.queued[results.next]
	results.next++
	return results.transaction.Exec(results.ctx, query.SQL, query.Arguments...)
}

// Close drops unread statements, as a real batch does after a failure.
func (results *replay) Close() error {
	results.closed = true
	return nil
}

// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ordering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
	"github.com/taibuivan/linkdeck/internal/platform/database/schema"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
)

// Batcher is the transactional batch-execute primitive of the storage layer.
//
// Implementations must apply every statement or none, and on success report
// exactly one row count per statement.
type Batcher interface {
	ExecBatch(context context.Context, statements []postgres.Statement) (postgres.BatchResult, error)
}

// # Service Layer

// Service applies reorders through a [Batcher].
type Service struct {
	batcher Batcher
	logger  *slog.Logger
}

// NewService constructs a new ordering [Service].
func NewService(batcher Batcher, logger *slog.Logger) *Service {
	return &Service{
		batcher: batcher,
		logger:  logger,
	}
}

/*
Apply writes the new order_num of every item in one atomic batch.

Description: Builds one UPDATE per item and submits them together. A
collaborator error, or a result that does not carry one row count per
statement, is reported as [ErrBatchFailed].

Parameters:
  - context: context.Context
  - scope: Scope (groups or sites)
  - items: []Item (already validated, see [ParseItems])

Returns:
  - error: nil when applied, ErrBatchFailed otherwise
*/
func (service *Service) Apply(context context.Context, scope Scope, items []Item) error {
	table, ok := scope.table()
	if !ok {
		return fmt.Errorf("%w: unknown scope %q", ErrBatchFailed, scope)
	}

	statements := BuildStatements(table, items)

	result, err := service.batcher.ExecBatch(context, statements)
	if err != nil {
		service.logger.ErrorContext(context, "reorder_failed",
			slog.String("scope", string(scope)),
			slog.Int("items", len(items)),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrBatchFailed, err)
	}

	if len(result.RowsAffected) != len(statements) {
		service.logger.ErrorContext(context, "reorder_result_mismatch",
			slog.String("scope", string(scope)),
			slog.Int("statements", len(statements)),
			slog.Int("results", len(result.RowsAffected)),
		)
		return fmt.Errorf("%w: %d results for %d statements", ErrBatchFailed, len(result.RowsAffected), len(statements))
	}

	var updated, missing int64
	for _, rows := range result.RowsAffected {
		if rows == 0 {
			missing++
		}
		updated += rows
	}

	attrs := []any{
		slog.String("scope", string(scope)),
		slog.Int64("updated", updated),
		slog.Int64("missing", missing),
	}
	if claims := ctxutil.ClaimsFrom(context); claims != nil {
		attrs = append(attrs, slog.String("subject", claims.Subject))
	}
	service.logger.InfoContext(context, "reorder_applied", attrs...)

	return nil
}

// BuildStatements renders one order update per item, in item order.
// Groups and sites share the id, order_num and updated_at column names.
func BuildStatements(table string, items []Item) []postgres.Statement {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2",
		table, schema.Groups.OrderNum, schema.Groups.UpdatedAt, schema.Groups.ID,
	)

	statements := make([]postgres.Statement, 0, len(items))
	for _, item := range items {
		statements = append(statements, postgres.Statement{
			SQL:  query,
			Args: []any{item.OrderNum, item.ID},
		})
	}
	return statements
}

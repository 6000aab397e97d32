// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ordering_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sync"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/linkdeck/internal/core/ordering"
	"github.com/taibuivan/linkdeck/internal/platform/credential"
	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
	"github.com/taibuivan/linkdeck/internal/platform/postgres"
	"github.com/taibuivan/linkdeck/internal/platform/postgres/postgrestest"
)

// memoryStore is an in-memory id -> order_num table with transactional batches.
type memoryStore struct {
	mu     sync.Mutex
	orders map[int64]int
	failAt int
}

func newMemoryStore(orders map[int64]int) *memoryStore {
	return &memoryStore{orders: orders, failAt: -1}
}

func (store *memoryStore) ExecBatch(_ context.Context, statements []postgres.Statement) (postgres.BatchResult, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	staged := maps.Clone(store.orders)
	rows := make([]int64, 0, len(statements))

	for index, statement := range statements {
		if index == store.failAt {
			return postgres.BatchResult{}, errors.New("storage: connection lost")
		}
		orderNum := statement.Args[0].(int)
		id := statement.Args[1].(int64)
		if _, ok := staged[id]; !ok {
			rows = append(rows, 0)
			continue
		}
		staged[id] = orderNum
		rows = append(rows, 1)
	}

	store.orders = staged
	return postgres.BatchResult{RowsAffected: rows}, nil
}

func (store *memoryStore) snapshot() map[int64]int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return maps.Clone(store.orders)
}

// shortBatcher reports success with a truncated result.
type shortBatcher struct{}

func (shortBatcher) ExecBatch(_ context.Context, statements []postgres.Statement) (postgres.BatchResult, error) {
	return postgres.BatchResult{RowsAffected: make([]int64, len(statements)-1)}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

var swapFirstTwo = []ordering.Item{
	{ID: 2, OrderNum: 0},
	{ID: 1, OrderNum: 1},
	{ID: 3, OrderNum: 2},
}

/*
TestApply_Atomicity verifies all-or-nothing reorders against a three-row scope.
*/
func TestApply_Atomicity(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		store := newMemoryStore(map[int64]int{1: 0, 2: 1, 3: 2})
		service := ordering.NewService(store, discardLogger())

		err := service.Apply(context.Background(), ordering.ScopeGroups, swapFirstTwo)

		require.NoError(t, err)
		assert.Equal(t, map[int64]int{1: 1, 2: 0, 3: 2}, store.snapshot())
	})

	t.Run("failed_mid_batch", func(t *testing.T) {
		store := newMemoryStore(map[int64]int{1: 0, 2: 1, 3: 2})
		store.failAt = 1
		service := ordering.NewService(store, discardLogger())

		err := service.Apply(context.Background(), ordering.ScopeSites, swapFirstTwo)

		require.ErrorIs(t, err, ordering.ErrBatchFailed)
		assert.Equal(t, map[int64]int{1: 0, 2: 1, 3: 2}, store.snapshot())
	})
}

/*
TestApply_UnknownIDIgnored verifies that a missing id is a no-op, not a failure.
*/
func TestApply_UnknownIDIgnored(t *testing.T) {
	for _, scope := range []ordering.Scope{ordering.ScopeGroups, ordering.ScopeSites} {
		t.Run(string(scope), func(t *testing.T) {
			store := newMemoryStore(map[int64]int{1: 0, 2: 1, 3: 2})
			service := ordering.NewService(store, discardLogger())

			err := service.Apply(context.Background(), scope, []ordering.Item{{ID: 999, OrderNum: 5}})

			require.NoError(t, err)
			assert.Equal(t, map[int64]int{1: 0, 2: 1, 3: 2}, store.snapshot())
		})
	}
}

/*
TestApply_ResultMismatch verifies that a collaborator reporting success with a
short result is not trusted.
*/
func TestApply_ResultMismatch(t *testing.T) {
	service := ordering.NewService(shortBatcher{}, discardLogger())

	err := service.Apply(context.Background(), ordering.ScopeGroups, swapFirstTwo)

	assert.ErrorIs(t, err, ordering.ErrBatchFailed)
}

/*
TestApply_UnknownScope verifies that an unmapped scope never reaches storage.
*/
func TestApply_UnknownScope(t *testing.T) {
	store := newMemoryStore(map[int64]int{1: 0})
	service := ordering.NewService(store, discardLogger())

	err := service.Apply(context.Background(), ordering.Scope("tags"), []ordering.Item{{ID: 1, OrderNum: 3}})

	assert.ErrorIs(t, err, ordering.ErrBatchFailed)
	assert.Equal(t, map[int64]int{1: 0}, store.snapshot())
}

/*
TestApply_LogsSubject verifies that the applied reorder is attributed to the gated caller.
*/
func TestApply_LogsSubject(t *testing.T) {
	var buffer bytes.Buffer
	store := newMemoryStore(map[int64]int{1: 0, 2: 1, 3: 2})
	service := ordering.NewService(store, slog.New(slog.NewJSONHandler(&buffer, nil)))

	ctx := ctxutil.WithClaims(context.Background(), &credential.Claims{Subject: "admin"})
	require.NoError(t, service.Apply(ctx, ordering.ScopeGroups, swapFirstTwo))

	assert.Contains(t, buffer.String(), `"msg":"reorder_applied"`)
	assert.Contains(t, buffer.String(), `"subject":"admin"`)
}

/*
TestApply_Postgres runs a reorder through the transactional Postgres batcher.
*/
func TestApply_Postgres(t *testing.T) {
	groupsSQL := regexp.QuoteMeta(`UPDATE groups SET order_num = $1, updated_at = NOW() WHERE id = $2`)
	sitesSQL := regexp.QuoteMeta(`UPDATE sites SET order_num = $1, updated_at = NOW() WHERE id = $2`)

	t.Run("commit", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(groupsSQL).WithArgs(0, int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(groupsSQL).WithArgs(1, int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(groupsSQL).WithArgs(2, int64(3)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		service := ordering.NewService(postgres.NewBatcher(postgrestest.WithBatches(mock)), discardLogger())
		require.NoError(t, service.Apply(context.Background(), ordering.ScopeGroups, swapFirstTwo))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(sitesSQL).WithArgs(0, int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(sitesSQL).WithArgs(1, int64(1)).WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		service := ordering.NewService(postgres.NewBatcher(postgrestest.WithBatches(mock)), discardLogger())
		err = service.Apply(context.Background(), ordering.ScopeSites, swapFirstTwo)

		assert.ErrorIs(t, err, ordering.ErrBatchFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestParseItems covers the payload shape rules.
*/
func TestParseItems(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		items, err := ordering.ParseItems([]byte(`[{"id":2,"order_num":0},{"id":1,"order_num":1}]`))
		require.NoError(t, err)
		assert.Equal(t, []ordering.Item{{ID: 2, OrderNum: 0}, {ID: 1, OrderNum: 1}}, items)
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"not_json", `{`, "items"},
		{"object", `{"id":1,"order_num":0}`, "items"},
		{"empty_array", `[]`, "items"},
		{"null", `null`, "items"},
		{"element_not_object", `[1]`, "items[0]"},
		{"missing_id", `[{"order_num":0}]`, "items[0].id"},
		{"string_id", `[{"id":"1","order_num":0}]`, "items[0].id"},
		{"fractional_order", `[{"id":1,"order_num":1.5}]`, "items[0].order_num"},
		{"missing_order", `[{"id":1},{"id":2}]`, "items[0].order_num"},
		{"duplicate_id", `[{"id":1,"order_num":0},{"id":1,"order_num":1}]`, "items[1].id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ordering.ParseItems([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, items)

			appError := apperrOf(t, err)
			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

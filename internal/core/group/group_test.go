// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/linkdeck/internal/core/group"
	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/pkg/pointer"
)

var columns = []string{"id", "name", "slug", "icon", "is_public", "order_num", "created_at", "updated_at"}

var stamp = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*group.Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return group.NewService(group.NewPostgresRepository(mock), logger), mock
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appError := apperr.As(err)
	require.NotNil(t, appError)
	return appError.HTTPStatus
}

/*
TestListGroups verifies ordering and scanning of every column.
*/
func TestListGroups(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectQuery(`SELECT .+ FROM groups ORDER BY order_num, id`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), "News", "news", "", true, 0, stamp, stamp).
			AddRow(int64(1), "Dev Tools", "dev-tools", "🛠", false, 1, stamp, stamp))

	groups, err := service.ListGroups(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(2), groups[0].ID)
	assert.Equal(t, "dev-tools", groups[1].Slug)
	assert.False(t, groups[1].IsPublic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestCreateGroup verifies slug derivation and order_num assignment.
*/
func TestCreateGroup(t *testing.T) {
	t.Run("appends_when_order_omitted", func(t *testing.T) {
		service, mock := newService(t)

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(order_num\) \+ 1, 0\) FROM groups`).
			WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(3))
		mock.ExpectQuery(`INSERT INTO groups`).
			WithArgs("Café Links", "cafe-links", "", true, 3).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), stamp, stamp))

		created, err := service.CreateGroup(context.Background(), group.CreateInput{Name: "  Café Links "})

		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, 3, created.OrderNum)
		assert.True(t, created.IsPublic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit_order", func(t *testing.T) {
		service, mock := newService(t)

		mock.ExpectQuery(`INSERT INTO groups`).
			WithArgs("Private", "private", "", false, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(8), stamp, stamp))

		created, err := service.CreateGroup(context.Background(), group.CreateInput{
			Name:     "Private",
			IsPublic: pointer.To(false),
			OrderNum: pointer.To(0),
		})

		require.NoError(t, err)
		assert.Equal(t, 0, created.OrderNum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name_required", func(t *testing.T) {
		service, mock := newService(t)

		_, err := service.CreateGroup(context.Background(), group.CreateInput{Name: "   "})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestUpdateGroup verifies that absent fields keep their stored value.
*/
func TestUpdateGroup(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		service, mock := newService(t)

		mock.ExpectQuery(`SELECT .+ FROM groups WHERE id = \$1`).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "Dev", "dev", "x", true, 4, stamp, stamp))
		mock.ExpectQuery(`UPDATE groups`).
			WithArgs(int64(1), "Dev Tools", "dev-tools", "x", true, 4).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(stamp.Add(time.Hour)))

		updated, err := service.UpdateGroup(context.Background(), 1, group.UpdateInput{Name: pointer.To("Dev Tools")})

		require.NoError(t, err)
		assert.Equal(t, "dev-tools", updated.Slug)
		assert.Equal(t, 4, updated.OrderNum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		service, mock := newService(t)

		mock.ExpectQuery(`SELECT .+ FROM groups WHERE id = \$1`).WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)

		_, err := service.UpdateGroup(context.Background(), 9, group.UpdateInput{IsPublic: pointer.To(false)})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestDeleteGroup verifies row-count based not-found detection.
*/
func TestDeleteGroup(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectExec(`DELETE FROM groups WHERE id = \$1`).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM groups WHERE id = \$1`).WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, service.DeleteGroup(context.Background(), 1))
	assert.Equal(t, http.StatusNotFound, statusOf(t, service.DeleteGroup(context.Background(), 2)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

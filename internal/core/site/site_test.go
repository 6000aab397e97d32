// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/linkdeck/internal/core/site"
	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/pkg/pointer"
)

var columns = []string{
	"id", "group_id", "name", "url", "icon", "description",
	"notes", "is_public", "order_num", "created_at", "updated_at",
}

var stamp = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*site.Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return site.NewService(site.NewPostgresRepository(mock), logger), mock
}

/*
TestHandler_ListSites verifies the optional group filter.
*/
func TestHandler_ListSites(t *testing.T) {
	t.Run("by_group", func(t *testing.T) {
		service, mock := newService(t)
		mock.ExpectQuery(`SELECT .+ FROM sites WHERE group_id = \$1 ORDER BY group_id, order_num, id`).
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), int64(4), "Go", "https://go.dev", "", "", "", true, 0, stamp, stamp))

		recorder := httptest.NewRecorder()
		site.NewHandler(service).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?group_id=4", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"url":"https://go.dev"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad_group", func(t *testing.T) {
		service, mock := newService(t)

		recorder := httptest.NewRecorder()
		site.NewHandler(service).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?group_id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestHandler_CreateSite verifies validation and foreign-key classification.
*/
func TestHandler_CreateSite(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		setup  func(mock pgxmock.PgxPoolIface)
	}{
		{
			name:   "created",
			body:   `{"group_id":4,"name":"Go","url":"https://go.dev"}`,
			status: http.StatusCreated,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(order_num\) \+ 1, 0\) FROM sites WHERE group_id = \$1`).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(2))
				mock.ExpectQuery(`INSERT INTO sites`).
					WithArgs(int64(4), "Go", "https://go.dev", "", "", "", true, 2).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(9), stamp, stamp))
			},
		},
		{
			name:   "bad_url",
			body:   `{"group_id":4,"name":"Go","url":"javascript:alert(1)"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "missing_group",
			body:   `{"name":"Go","url":"https://go.dev"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown_group",
			body:   `{"group_id":77,"name":"Go","url":"https://go.dev","order_num":0}`,
			status: http.StatusUnprocessableEntity,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO sites`).
					WithArgs(int64(77), "Go", "https://go.dev", "", "", "", true, 0).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			name:   "bad_json",
			body:   `{"group_id":`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newService(t)
			if tt.setup != nil {
				tt.setup(mock)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			site.NewHandler(service).Routes().ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestUpdateSite_MoveAppends verifies that moving a site appends it to the target group.
*/
func TestUpdateSite_MoveAppends(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectQuery(`SELECT .+ FROM sites WHERE id = \$1`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), int64(4), "Go", "https://go.dev", "", "", "", true, 0, stamp, stamp))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(order_num\) \+ 1, 0\) FROM sites WHERE group_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(6))
	mock.ExpectQuery(`UPDATE sites`).
		WithArgs(int64(1), int64(5), "Go", "https://go.dev", "", "", "", true, 6).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(stamp))

	updated, err := service.UpdateSite(context.Background(), 1, site.UpdateInput{GroupID: pointer.To(int64(5))})

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.GroupID)
	assert.Equal(t, 6, updated.OrderNum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestUpdateSite_InvalidURL verifies that a merged site is validated before writing.
*/
func TestUpdateSite_InvalidURL(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectQuery(`SELECT .+ FROM sites WHERE id = \$1`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), int64(4), "Go", "https://go.dev", "", "", "", true, 0, stamp, stamp))

	_, err := service.UpdateSite(context.Background(), 1, site.UpdateInput{URL: pointer.To("ftp://files")})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

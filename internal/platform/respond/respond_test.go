// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", apperr.ValidationError("Validation failed", apperr.FieldError{Field: "items[0].id", Message: "Must be an integer"}), http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed"},
		{"not_found", apperr.NotFound("Site"), http.StatusNotFound, "NOT_FOUND", "Site not found"},
		{"plain_error_is_hidden", errors.New("pgx: conn closed"), http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.code, envelope.Code)
			assert.Equal(t, tt.message, envelope.Error)
			assert.NotContains(t, recorder.Body.String(), "pgx")
		})
	}
}

func TestResult_IsFlat(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Result(recorder, http.StatusUnauthorized, respond.ResultEnvelope{Success: false, Message: "Invalid username or password"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid username or password"}`, recorder.Body.String())
}

func TestOK_Wraps(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, []int{1, 2})

	assert.JSONEq(t, `{"data":[1,2]}`, recorder.Body.String())
}

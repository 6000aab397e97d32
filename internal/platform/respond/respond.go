// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes every HTTP response body of the API.
//
// # Envelopes
//
// CRUD endpoints wrap their payload as {"data": ...}. Login, init and reorder
// answer with the flat {"success": ...} shape the web UI reads. Errors always
// use {"error", "code", "details"}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/linkdeck/internal/platform/apperr"
	"github.com/taibuivan/linkdeck/internal/platform/ctxutil"
)

// contentTypeJSON is set on every body written by this package.
const contentTypeJSON = "application/json; charset=utf-8"

// SuccessEnvelope wraps CRUD payloads.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ResultEnvelope is the flat shape of login, init and reorder responses.
type ResultEnvelope struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON encodes payload with the given status.
func JSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", contentTypeJSON)
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes 200 {"data": data}.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes 201 {"data": data}.
func Created(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Result writes a flat [ResultEnvelope].
func Result(writer http.ResponseWriter, status int, result ResultEnvelope) {
	JSON(writer, status, result)
}

// NoContent writes 204 without a body.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

/*
Error renders err as an [ErrorEnvelope].

Description: An error that is not an [*apperr.AppError] becomes a generic
500. Every 5xx is logged with its cause on the request logger; the cause
never reaches the client.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.Logger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

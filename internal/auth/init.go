// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/linkdeck/internal/platform/migration"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// Messages returned by the init endpoint.
const (
	MessageInitialized        = "initialized"
	MessageAlreadyInitialized = "already initialized"
	MessageInitFailed         = "Initialization failed"
)

// Migrator applies pending schema migrations.
type Migrator interface {
	Up() (migration.Result, error)
}

// InitHandler serves the first-run init endpoint.
type InitHandler struct {
	migrator Migrator
	logger   *slog.Logger
}

// NewInitHandler constructs an [InitHandler].
func NewInitHandler(migrator Migrator, logger *slog.Logger) *InitHandler {
	return &InitHandler{migrator: migrator, logger: logger}
}

/*
POST /api/init.

Description: Creates the schema if it is missing. Calling it again is a no-op.

Response:
  - 200: {success: true, message: "initialized" | "already initialized"}
  - 500: {success: false, message}
*/
func (handler *InitHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.migrator.Up()
	if err != nil {
		handler.logger.ErrorContext(request.Context(), "init_failed", slog.Any("error", err))
		respond.Result(writer, http.StatusInternalServerError, respond.ResultEnvelope{Success: false, Message: MessageInitFailed})
		return
	}

	message := MessageAlreadyInitialized
	if result.Changed {
		message = MessageInitialized
	}

	respond.Result(writer, http.StatusOK, respond.ResultEnvelope{Success: true, Message: message})
}

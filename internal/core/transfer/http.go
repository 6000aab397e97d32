// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package transfer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/linkdeck/internal/platform/request"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// Handler implements the export and import endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new transfer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the transfer endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// RegisterRoutes adds the transfer endpoints to an existing router, which must sit behind the auth gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/export", handler.export)
	router.Post("/import", handler.importDocument)
}

/*
GET /api/export.

Response:
  - 200: Document (sent as an attachment)
*/
func (handler *Handler) export(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.Export(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Disposition", `attachment; filename="linkdeck-export.json"`)
	respond.JSON(writer, http.StatusOK, document)
}

/*
POST /api/import.

Request:
  - mode: string (append (default) or replace)
  - body: Document

Response:
  - 200: Summary
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) importDocument(writer http.ResponseWriter, request *http.Request) {
	mode := Mode(request.URL.Query().Get("mode"))
	if mode == "" {
		mode = ModeAppend
	}

	var document Document
	if err := requestutil.DecodeJSON(writer, request, &document); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Import(request.Context(), document, mode)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

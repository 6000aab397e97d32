// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/linkdeck/internal/platform/request"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// Handler implements the HTTP layer for site management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new site [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the site endpoints. Mount it behind the auth gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSites)
	router.Post("/", handler.createSite)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getSite)
		subRouter.Put("/", handler.updateSite)
		subRouter.Delete("/", handler.deleteSite)
	})

	return router
}

/*
GET /api/sites.

Request:
  - group_id: int64 (Optional group restriction)

Response:
  - 200: []Site
  - 400: VALIDATION_ERROR: Malformed group_id
*/
func (handler *Handler) listSites(writer http.ResponseWriter, request *http.Request) {
	groupID, err := requestutil.QueryID(request, FieldGroupID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sites, err := handler.service.ListSites(request.Context(), Filter{GroupID: groupID})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sites)
}

// GET /api/sites/{id}.
func (handler *Handler) getSite(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	site, err := handler.service.GetSite(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, site)
}

/*
POST /api/sites.

Response:
  - 201: Site: Created entity
  - 400: VALIDATION_ERROR
  - 422: UNPROCESSABLE: group_id references no group
*/
func (handler *Handler) createSite(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	site, err := handler.service.CreateSite(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, site)
}

// PUT /api/sites/{id}.
func (handler *Handler) updateSite(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	site, err := handler.service.UpdateSite(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, site)
}

// DELETE /api/sites/{id}.
func (handler *Handler) deleteSite(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSite(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/linkdeck/internal/platform/request"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for group management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new group [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the group endpoints. Mount it behind the auth gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGroups)
	router.Post("/", handler.createGroup)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getGroup)
		subRouter.Put("/", handler.updateGroup)
		subRouter.Delete("/", handler.deleteGroup)
	})

	return router
}

/*
GET /api/groups.

Response:
  - 200: []Group: Ordered by order_num, id
*/
func (handler *Handler) listGroups(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.ListGroups(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
GET /api/groups/{id}.

Response:
  - 200: Group
  - 400: VALIDATION_ERROR: id is not a positive integer
  - 404: NOT_FOUND
*/
func (handler *Handler) getGroup(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.GetGroup(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, group)
}

/*
POST /api/groups.

Request (Body):
  - CreateInput JSON object

Response:
  - 201: Group: Created entity
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) createGroup(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	group, err := handler.service.CreateGroup(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, group)
}

/*
PUT /api/groups/{id}.

Description: Partial update; absent fields keep their value.

Response:
  - 200: Group: Updated entity
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND
*/
func (handler *Handler) updateGroup(writer http.ResponseWriter, request *http.Request) {
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

	group, err := handler.service.UpdateGroup(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, group)
}

/*
DELETE /api/groups/{id}.

Response:
  - 204: No Content
  - 404: NOT_FOUND
*/
func (handler *Handler) deleteGroup(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGroup(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// Handler implements the public listing endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new listing [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public endpoints. No authentication applies.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/groups", handler.publicGroups)
	return router
}

/*
GET /api/public/groups.

Response:
  - 200: []PublicGroup: Public groups with their public sites
*/
func (handler *Handler) publicGroups(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.PublicGroups(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

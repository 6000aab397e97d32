// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ordering

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/linkdeck/internal/platform/request"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// MessageReorderFailed is the only failure detail a client ever sees.
const MessageReorderFailed = "Failed to update order"

// # Handler Implementation

// Handler implements the HTTP layer for reorders.
type Handler struct {
	service *Service
}

// NewHandler constructs a new ordering [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the reorder endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// RegisterRoutes adds the reorder endpoints to an existing router, which must sit behind the auth gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Put("/group-orders", handler.reorder(ScopeGroups))
	router.Put("/site-orders", handler.reorder(ScopeSites))
}

/*
PUT /api/group-orders, PUT /api/site-orders.

Description: Replaces the order of the listed rows in one transaction.

Request (Body):
  - [{id: integer, order_num: integer}, ...]

Response:
  - 200: {success: true}
  - 400: VALIDATION_ERROR: Body is not a non-empty array of valid items
  - 500: {success: false, message}: Nothing was changed
*/
func (handler *Handler) reorder(scope Scope) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		raw, err := requestutil.ReadBody(writer, request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		items, err := ParseItems(raw)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.service.Apply(request.Context(), scope, items); err != nil {
			if errors.Is(err, ErrBatchFailed) {
				respond.Result(writer, http.StatusInternalServerError, respond.ResultEnvelope{
					Success: false,
					Message: MessageReorderFailed,
				})
				return
			}
			respond.Error(writer, request, err)
			return
		}

		respond.Result(writer, http.StatusOK, respond.ResultEnvelope{Success: true})
	}
}

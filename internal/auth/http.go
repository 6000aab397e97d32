// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/linkdeck/internal/platform/middleware"
	requestutil "github.com/taibuivan/linkdeck/internal/platform/request"
	"github.com/taibuivan/linkdeck/internal/platform/respond"
)

// Handler implements the login endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new login [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the login route. It is mounted outside the auth gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	return router
}

// loginRequest is the JSON body of a login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
POST /api/auth/login.

Request (Body):
  - username: string
  - password: string

Response:
  - 200: {success: true, token}
  - 400: VALIDATION_ERROR: Empty credentials while auth is enabled
  - 401: {success: false, message}: Wrong credentials
  - 429: RATE_LIMITED: Too many failures from this IP
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), middleware.RealIP(request), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !result.Success {
		respond.Result(writer, http.StatusUnauthorized, respond.ResultEnvelope{Success: false, Message: result.Message})
		return
	}

	respond.Result(writer, http.StatusOK, respond.ResultEnvelope{Success: true, Token: result.Token})
}

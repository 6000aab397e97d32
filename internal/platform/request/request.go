// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/linkdeck/internal/platform/validate"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 4 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (used to cap the body size)
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ReadBody reads the raw request body, capped like [DecodeJSON].

Returns:
  - []byte: Body bytes
  - error: validate.ErrInvalidJSON if the body is unreadable or too large
*/
func ReadBody(writer http.ResponseWriter, request *http.Request) ([]byte, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	raw, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, validate.ErrInvalidJSON
	}
	return raw, nil
}

/*
ID parses a named URL parameter as a positive integer identifier.

Returns:
  - int64: Parsed identifier
  - error: Validation error naming the parameter if it is not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.Field(name, "Must be a positive integer")
	}
	return id, nil
}

/*
QueryID parses an optional positive integer query parameter.

Returns:
  - *int64: nil if absent
  - error: Validation error if present but malformed
*/
func QueryID(request *http.Request, name string) (*int64, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, validate.Field(name, "Must be a positive integer")
	}
	return &id, nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the catalog JSON API.
// Handlers are grouped by resource (products, categories, FAQs) and
// receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shopcatalog/internal/catalog"
	"shopcatalog/internal/faq"
	"shopcatalog/internal/middleware"
)

// idResponse is the body of successful product and FAQ mutations.
type idResponse struct {
	ID int64 `json:"id"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the API's error envelope.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps a service error to its HTTP status. Unknown
// errors are logged and reported as 500 without their details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput), errors.Is(err, faq.ErrInvalidInput):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, faq.ErrNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrReferenceNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrHierarchyMismatch):
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}

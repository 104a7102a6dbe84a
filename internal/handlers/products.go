// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"shopcatalog/internal/catalog"
	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
)

// ProductService is the catalog behaviour the product handlers need.
// *catalog.Service satisfies it.
type ProductService interface {
	List(ctx context.Context, req pagination.Request) (pagination.Response[models.ProductSummary], error)
	ListByCategory(ctx context.Context, parentID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error)
	ListBySubCategory(ctx context.Context, subID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error)
	ListByTheme(ctx context.Context, theme models.Theme, req pagination.Request) (pagination.Response[models.ProductSummary], error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, in catalog.ProductInput) (int64, error)
	Update(ctx context.Context, id int64, in catalog.ProductInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Products groups the /api/product handlers.
type Products struct {
	svc ProductService
}

// NewProducts creates the product handler group.
func NewProducts(svc ProductService) *Products {
	return &Products{svc: svc}
}

// List handles GET /api/product/list.
func (h *Products) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.List(r.Context(), pagination.FromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListByCategory handles GET /api/product/list/category?cno=.
// cno=0 and cno=all list every category.
func (h *Products) ListByCategory(w http.ResponseWriter, r *http.Request) {
	raw, err := requiredQuery(r, "cno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	parentID, err := catalog.ParseParentRef(raw)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp, err := h.svc.ListByCategory(r.Context(), parentID, pagination.FromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListBySubCategory handles GET /api/product/list/subcategory?scno=.
func (h *Products) ListBySubCategory(w http.ResponseWriter, r *http.Request) {
	raw, err := requiredQuery(r, "scno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	subID, err := parsePositive(raw, "scno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.svc.ListBySubCategory(r.Context(), subID, pagination.FromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListByTheme handles GET /api/product/list/theme?themeCategory=.
func (h *Products) ListByTheme(w http.ResponseWriter, r *http.Request) {
	raw, err := requiredQuery(r, "themeCategory")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	theme, err := models.ParseTheme(raw)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.svc.ListByTheme(r.Context(), theme, pagination.FromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Read handles GET /api/product/read/{pno}.
func (h *Products) Read(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "pno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Add handles POST /api/product/add.
func (h *Products) Add(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

// Update handles PUT /api/product/update/{pno}.
func (h *Products) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "pno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	var in catalog.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err = h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

// Delete handles DELETE /api/product/delete/{pno}.
func (h *Products) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "pno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err = h.svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

package handlers

import (
	"context"
	"net/http"

	"shopcatalog/internal/models"
)

// CategoryReader is the category lookup the category handlers need.
// *store.CategoryStore satisfies it.
type CategoryReader interface {
	FindParent(ctx context.Context, id int64) (*models.ParentCategory, error)
	ListParents(ctx context.Context) ([]models.ParentCategory, error)
	ListSubs(ctx context.Context, parentID int64) ([]models.SubCategory, error)
}

// Categories groups the /api/category handlers.
type Categories struct {
	categories CategoryReader
}

// NewCategories creates the category handler group.
func NewCategories(categories CategoryReader) *Categories {
	return &Categories{categories: categories}
}

// List handles GET /api/category/list.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	parents, err := h.categories.ListParents(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parents)
}

// Subs handles GET /api/category/{cno}/sub.
func (h *Categories) Subs(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "cno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	parent, err := h.categories.FindParent(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if parent == nil {
		writeError(w, "category not found", http.StatusNotFound)
		return
	}

	subs, err := h.categories.ListSubs(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

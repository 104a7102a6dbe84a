package handlers

import (
	"context"
	"net/http"
	"strings"

	"shopcatalog/internal/faq"
	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
)

// FAQService is the FAQ behaviour the FAQ handlers need.
// *faq.Service satisfies it.
type FAQService interface {
	List(ctx context.Context, req pagination.Request, category *models.FAQCategory) (pagination.Response[models.FAQ], error)
	Read(ctx context.Context, id int64) (*models.FAQ, error)
	Create(ctx context.Context, in faq.Input) (int64, error)
	Update(ctx context.Context, id int64, in faq.Input) error
	SoftDelete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// FAQs groups the /api/faq handlers.
type FAQs struct {
	svc FAQService
}

// NewFAQs creates the FAQ handler group.
func NewFAQs(svc FAQService) *FAQs {
	return &FAQs{svc: svc}
}

// List handles GET /api/faq/list. The optional category parameter
// restricts the list to one FAQ category.
func (h *FAQs) List(w http.ResponseWriter, r *http.Request) {
	var category *models.FAQCategory
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		c, err := models.ParseFAQCategory(raw)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		category = &c
	}

	resp, err := h.svc.List(r.Context(), pagination.FromQuery(r.URL.Query()), category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Read handles GET /api/faq/read/{fno}. Every successful read counts as a view.
func (h *FAQs) Read(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "fno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.Read(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Add handles POST /api/faq/add.
func (h *FAQs) Add(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeFAQInput(w, r)
	if !ok {
		return
	}

	id, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// Update handles PUT /api/faq/update/{fno}.
func (h *FAQs) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "fno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, ok := decodeFAQInput(w, r)
	if !ok {
		return
	}

	if err := h.svc.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

// Delete handles DELETE /api/faq/delete/{fno}. Unknown IDs are 404;
// deleting an already-deleted FAQ still reports success.
func (h *FAQs) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "fno")
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	exists, err := h.svc.Exists(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !exists {
		writeError(w, "faq not found", http.StatusNotFound)
		return
	}

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, "success")
}

// decodeFAQInput reads a FAQ body, accepting the category name in any case.
// It writes the 400 response itself and reports false on failure.
func decodeFAQInput(w http.ResponseWriter, r *http.Request) (faq.Input, bool) {
	var in faq.Input
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return in, false
	}
	in.Category = models.FAQCategory(strings.ToUpper(strings.TrimSpace(string(in.Category))))
	return in, true
}

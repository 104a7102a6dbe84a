// Package router sets up the HTTP routes and middleware chain of the
// catalog JSON API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopcatalog/internal/handlers"
	"shopcatalog/internal/middleware"
)

// Handlers bundles the handler groups mounted under /api.
type Handlers struct {
	Products   *handlers.Products
	Categories *handlers.Categories
	FAQs       *handlers.FAQs
}

// New creates the chi router. A nil limiter disables rate limiting.
func New(h Handlers, limiter middleware.Limiter, retryAfter time.Duration) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
	})

	// Health check is never rate limited.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(middleware.RateLimit(limiter, retryAfter))
		}

		r.Route("/product", func(r chi.Router) {
			r.Get("/list", h.Products.List)
			r.Get("/list/category", h.Products.ListByCategory)
			r.Get("/list/subcategory", h.Products.ListBySubCategory)
			r.Get("/list/theme", h.Products.ListByTheme)
			r.Get("/read/{pno}", h.Products.Read)
			r.Post("/add", h.Products.Add)
			r.Put("/update/{pno}", h.Products.Update)
			r.Delete("/delete/{pno}", h.Products.Delete)
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/list", h.Categories.List)
			r.Get("/{cno}/sub", h.Categories.Subs)
		})

		r.Route("/faq", func(r chi.Router) {
			r.Get("/list", h.FAQs.List)
			r.Get("/read/{fno}", h.FAQs.Read)
			r.Post("/add", h.FAQs.Add)
			r.Put("/update/{fno}", h.FAQs.Update)
			r.Delete("/delete/{fno}", h.FAQs.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, `{"status":"ok"}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

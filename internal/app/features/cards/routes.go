// internal/app/features/cards/routes.go
package cards

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the card API.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	return r
}

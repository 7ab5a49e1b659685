// internal/app/features/feed/routes.go
package feed

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeFeed)
	return r
}

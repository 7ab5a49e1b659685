// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the profile-completion endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeComplete)
	return r
}

// internal/app/features/authconfig/routes.go
package authconfig

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the identity config endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeConfig)
	return r
}

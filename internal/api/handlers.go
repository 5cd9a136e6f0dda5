package api

import (
	"net/http"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

func (h *Handlers) GetProfile() http.HandlerFunc {
	return GetProfileHandler(h.deps.Services.Profile)
}

func (h *Handlers) HealthCheck() http.HandlerFunc {
	return HealthCheckHandler(h.deps.DB, h.deps.Services.Cache, h.deps.UpSince)
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/agendapro/agendapro/internal/domain/model"
)

// DirectoryHandler serves the staff roster and service catalog.
type DirectoryHandler struct {
	deps Dependencies
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(deps Dependencies) *DirectoryHandler {
	return &DirectoryHandler{deps: deps}
}

type staffResponse struct {
	Staff []string `json:"staff"`
}

type servicesResponse struct {
	Services []model.Service `json:"services"`
}

// HandleStaff handles GET /staff requests.
func (h *DirectoryHandler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, staffResponse{Staff: h.deps.ListStaff(r.Context())})
}

// HandleServices handles GET /services requests.
func (h *DirectoryHandler) HandleServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, servicesResponse{Services: h.deps.ListServices(r.Context())})
}

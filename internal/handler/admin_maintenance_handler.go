package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aayush0444/Cine-Suggest/internal/service"

	"github.com/go-chi/chi/v5"
)

type AdminMaintenanceHandler struct {
	svc *service.AdminMaintenanceService
}

func NewAdminMaintenanceHandler(s *service.AdminMaintenanceService) *AdminMaintenanceHandler {
	return &AdminMaintenanceHandler{svc: s}
}

// MountAdminMaintenanceRoutes cuelga las rutas de mantenimiento.
func MountAdminMaintenanceRoutes(r chi.Router, h *AdminMaintenanceHandler) {
	r.Get("/admin/artifacts/summary", h.GetArtifactSummary)
}

// @Summary Estado de los artefactos (Mongo vs memoria)
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminArtifactSummary
// @Router /admin/artifacts/summary [get]
func (h *AdminMaintenanceHandler) GetArtifactSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.GetArtifactSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}

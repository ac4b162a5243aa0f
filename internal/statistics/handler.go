package statistics

import (
	"log/slog"
	"net/http"

	"github.com/itparc/asset-management/internal/auth"
	"github.com/itparc/asset-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	service *Service
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger),
		service:     service,
	}
}

func (h *Handler) AdminStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetAdminStatistics()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) EmployerStatistics(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Unauthenticated. Please login to access this resource.")
		return
	}

	stats, err := h.service.GetEmployerStatistics(actor.EmployerID())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stats)
}

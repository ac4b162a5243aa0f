package declaration

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

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

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (*auth.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Unauthenticated. Please login to access this resource.")
		return nil, false
	}
	return actor, true
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	declarations, err := h.service.ListDeclarations(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]any{"status": "success", "data": declarations})
}

// AllDeclarations is the admin triage listing with grouped buckets and
// counts.
func (h *Handler) AllDeclarations(w http.ResponseWriter, r *http.Request) {
	declarations, grouped, counts, err := h.service.AllDeclarations(r.URL.Query().Get("status"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"data":    declarations,
		"grouped": grouped,
		"counts":  counts,
	})
}

// ByEmployer serves both /my-declarations (no id) and
// /employers/{id}/declarations.
func (h *Handler) ByEmployer(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var employerID int64
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid employer id")
			return
		}
		employerID = id
	}

	declarations, grouped, counts, err := h.service.ByEmployer(actor, employerID, r.URL.Query().Get("status"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if grouped == nil {
		// Admin without a target employer gets the flat listing.
		h.WriteJSON(w, http.StatusOK, map[string]any{"status": "success", "data": declarations})
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"data":    declarations,
		"grouped": grouped,
		"counts":  counts,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleServiceError(w, ErrDeclarationNotFound)
		return
	}

	detail, err := h.service.GetDeclaration(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]any{"status": "success", "data": detail})
}

func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var dto CreateDeclarationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	d, err := h.service.CreateDeclaration(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": "Declaration created successfully",
		"data":    d,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleServiceError(w, ErrDeclarationNotFound)
		return
	}

	var dto UpdateDeclarationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	d, message, err := h.service.UpdateDeclaration(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": message,
		"data":    d,
	})
}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleServiceError(w, ErrDeclarationNotFound)
		return
	}

	var dto ProcessDeclarationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	detail, message, err := h.service.ProcessDeclaration(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": message,
		"data":    detail,
	})
}

func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleServiceError(w, ErrDeclarationNotFound)
		return
	}

	if err := h.service.DeleteDeclaration(actor, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Declaration deleted successfully",
	})
}

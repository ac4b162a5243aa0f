package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/itparc/asset-management/internal"
	"github.com/itparc/asset-management/internal/transport"
	"github.com/itparc/asset-management/pkg/logger"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (*LoginResponse, error)
	Authenticate(token string) (*Actor, error)
	Logout(token string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Warn("login failed", "error", err)

		switch err {
		case ErrInvalidCredentials:
			h.WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "The provided credentials are incorrect.",
				"errors":  map[string][]string{"email": {"The provided credentials are incorrect."}},
			})
		case ErrAccountDeactivated:
			h.WriteJSON(w, http.StatusForbidden, map[string]string{
				"message": "Your account has been deactivated. Please contact the administrator.",
			})
		default:
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteAppError(w, appErr)
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := h.Service.Logout(token); err != nil {
		h.Logger.Error("logout failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Middleware resolves the bearer token to an actor and stores it in the
// request context. Requests without a valid token get 401.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "Unauthenticated. Please login to access this resource.")
			return
		}

		actor, err := h.Service.Authenticate(token)
		if err != nil {
			h.Logger.Warn("token rejected", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "Unauthenticated. Please login to access this resource.")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
	})
}

// RequireRole is the coarse route-level role gate. Row-level ownership checks
// stay inside the handlers that take a record id.
func RequireRole(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}
			if actor.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "Forbidden: insufficient role",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

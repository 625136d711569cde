package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logout successful
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Invalid token
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler for revoking a session token.
// The token is the last whitespace-separated field of the Authorization
// header, so any scheme word is accepted.
// @Summary User logout
// @Description Revokes the session token presented in the Authorization header. A token already revoked yields 401.
// @Tags auth
// @Produce json
// @Param Authorization header string true "Token <key>"
// @Success 200 {object} handlers.LogoutResponse "Logout successful"
// @Failure 401 {object} handlers.LogoutErrorResponse "Missing or invalid token"
// @Router /logout/ [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := strings.Fields(r.Header.Get("Authorization"))
		if len(fields) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Invalid token",
			})
			return
		}
		token := fields[len(fields)-1]

		if err := svc.Logout(r.Context(), token); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Invalid token",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logout successful",
		})
	}
}

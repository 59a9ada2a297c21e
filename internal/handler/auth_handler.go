package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clearpath-mortgage/backend/internal/service"
)

// AuthHandler exposes the admin login exchange.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// loginRequest covers both login bodies: {email, password} for the initial
// exchange and {email, newPassword, session} for the new-password challenge.
type loginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
	Session     string `json:"session"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	Session   string `json:"session,omitempty"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid_json")
		return
	}
	if req.Email == "" {
		respondBadRequest(w, "email_required")
		return
	}

	var (
		res *service.LoginResult
		err error
	)
	if req.Session != "" && req.NewPassword != "" {
		res, err = h.auth.CompleteNewPassword(r.Context(), req.Email, req.NewPassword, req.Session)
	} else {
		res, err = h.auth.Login(r.Context(), req.Email, req.Password)
	}
	if err != nil {
		// All provider failures collapse to one answer; the dashboard
		// redirects to login on any 401.
		writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Error: "invalid credentials"})
		return
	}

	if res.Challenge != "" {
		writeJSON(w, http.StatusOK, loginResponse{
			Success:   false,
			Challenge: res.Challenge,
			Session:   res.Session,
		})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: res.Token})
}

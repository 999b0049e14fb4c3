package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	AccessToken string `json:"access_token"`

	// Token type
	// example: bearer
	TokenType string `json:"token_type"`

	// Username of the authenticated user
	// example: john_doe
	Username string `json:"username"`

	// Id of the authenticated user
	UserID int64 `json:"user_id"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Incorrect username or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// The credentials arrive as form fields, not JSON.
// @Summary User login
// @Description Authenticate user with form credentials and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Bearer token issued"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid form body"
// @Failure 401 {object} handlers.LoginErrorResponse "Incorrect username or password"
// @Router /auth/token [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid form body",
			})
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "username and password are required",
			})
			return
		}

		user, token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Incorrect username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			Username:    user.Username,
			UserID:      user.ID,
		})
	}
}

package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-diet-planner/internal/jwt"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
)

// Authenticator defines the credential operations used by the auth endpoint.
type Authenticator interface {
	Register(ctx context.Context, email, password, username, deviceID string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

// SessionTokener resolves the session of a request that is not behind AuthMiddleware.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthRequest is the body of POST /api/auth
// swagger:model AuthRequest
type AuthRequest struct {
	// login, register, logout or me
	// required: true
	// default: login
	Action string `json:"action"`

	// default: john@example.com
	Email string `json:"email,omitempty"`

	// default: secret123
	Password string `json:"password,omitempty"`

	// default: john
	Username string `json:"username,omitempty"`

	// Device whose anonymous account should be upgraded on register
	DeviceID string `json:"device_id,omitempty"`
}

type authCommand interface {
	isAuthCommand()
}

type loginCommand struct {
	email, password string
}

type registerCommand struct {
	email, password, username, deviceID string
}

type logoutCommand struct{}

type meCommand struct{}

func (loginCommand) isAuthCommand()    {}
func (registerCommand) isAuthCommand() {}
func (logoutCommand) isAuthCommand()   {}
func (meCommand) isAuthCommand()       {}

func (req AuthRequest) command() authCommand {
	switch req.Action {
	case "login":
		return loginCommand{email: req.Email, password: req.Password}
	case "register":
		return registerCommand{
			email:    req.Email,
			password: req.Password,
			username: req.Username,
			deviceID: req.DeviceID,
		}
	case "logout":
		return logoutCommand{}
	case "me":
		return meCommand{}
	}
	return nil
}

// NewAuthHandler returns an HTTP handler for the legacy credential flow.
// GET is a shorthand for the me action.
// @Summary Login, register, logout or current user
// @Description Dispatches on action. Login and register set the session cookie, logout clears it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.AuthRequest false "Auth Request"
// @Success 200 {object} handlers.UserResponse
// @Success 201 {object} handlers.UserResponse "Registered"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 405 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/auth [post]
// @Router /api/auth [get]
func NewAuthHandler(svc Authenticator, tokener SessionTokener, cookie *SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var cmd authCommand = meCommand{}
		if r.Method != http.MethodGet {
			var req AuthRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
			cmd = req.command()
		}

		switch cmd := cmd.(type) {
		case loginCommand:
			user, token, err := svc.Login(ctx, cmd.email, cmd.password)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			cookie.Set(w, token)
			writeJSON(w, http.StatusOK, UserResponse{User: user, Token: token})

		case registerCommand:
			user, token, err := svc.Register(ctx, cmd.email, cmd.password, cmd.username, cmd.deviceID)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			cookie.Set(w, token)
			writeJSON(w, http.StatusCreated, UserResponse{User: user, Token: token})

		case logoutCommand:
			cookie.Clear(w)
			writeJSON(w, http.StatusOK, SuccessResponse{Success: true})

		case meCommand:
			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("failed to parse token claims", "err", err)
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			user, err := svc.Me(ctx, claims.UserID)
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, UserResponse{User: user})

		default:
			writeError(w, http.StatusMethodNotAllowed, msgUnknownAction)
		}
	}
}

// RegisterAuthHandler registers the auth routes
func RegisterAuthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/auth", h)
	r.Post("/api/auth", h)
}

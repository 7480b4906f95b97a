package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
)

// IdentityIssuer issues device accounts and bridges provider identities.
type IdentityIssuer interface {
	Bootstrap(ctx context.Context, deviceID string) (*models.User, string, error)
	Sync(ctx context.Context, req services.SyncRequest) (*models.User, string, error)
}

// UsersRequest is the body of POST /api/users. Without an explicit action,
// a user_id or access_token selects sync and a bare device_id selects bootstrap.
// A body selecting neither is invalid input.
// swagger:model UsersRequest
type UsersRequest struct {
	// bootstrap or sync
	// default: bootstrap
	Action string `json:"action,omitempty"`

	// Client-generated device id
	// default: abc-123
	DeviceID string `json:"device_id,omitempty"`

	// External identity provider user id
	UserID string `json:"user_id,omitempty"`

	// Email reported by the provider
	Email string `json:"email,omitempty"`

	// Display name reported by the provider
	Username string `json:"username,omitempty"`

	// Provider access token, verified server side when configured
	AccessToken string `json:"access_token,omitempty"`
}

// UserResponse carries the resolved account and its session token
// swagger:model UserResponse
type UserResponse struct {
	User *models.User `json:"user"`

	// default: JWT_TOKEN
	Token string `json:"token,omitempty"`
}

type usersCommand interface {
	isUsersCommand()
}

type bootstrapCommand struct {
	deviceID string
}

type syncCommand struct {
	req services.SyncRequest
}

func (bootstrapCommand) isUsersCommand() {}
func (syncCommand) isUsersCommand()      {}

func (req UsersRequest) command() usersCommand {
	action := req.Action
	if action == "" {
		switch {
		case req.UserID != "" || req.AccessToken != "":
			action = "sync"
		case req.DeviceID != "":
			action = "bootstrap"
		}
	}

	switch action {
	case "bootstrap":
		return bootstrapCommand{deviceID: req.DeviceID}
	case "sync":
		var deviceID *string
		if d := strings.TrimSpace(req.DeviceID); d != "" {
			deviceID = &d
		}
		return syncCommand{req: services.SyncRequest{
			ProviderToken: req.AccessToken,
			Claimed: models.ExternalIdentity{
				UserID:   req.UserID,
				Email:    req.Email,
				Username: req.Username,
				DeviceID: deviceID,
			},
		}}
	}
	return nil
}

// NewUsersHandler returns an HTTP handler for device bootstrap and provider sync.
// @Summary Bootstrap or sync a user
// @Description Creates or returns the anonymous account of a device, or reconciles an external identity with the identity store
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UsersRequest true "Users Request"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 405 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/users [post]
func NewUsersHandler(svc IdentityIssuer, cookie *SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UsersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		var (
			user  *models.User
			token string
			err   error
		)
		switch cmd := req.command().(type) {
		case bootstrapCommand:
			user, token, err = svc.Bootstrap(r.Context(), cmd.deviceID)
		case syncCommand:
			user, token, err = svc.Sync(r.Context(), cmd.req)
		default:
			if req.Action == "" {
				writeServiceError(w, r, services.ErrInvalidInput)
				return
			}
			writeError(w, http.StatusMethodNotAllowed, msgUnknownAction)
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		cookie.Set(w, token)
		writeJSON(w, http.StatusOK, UserResponse{User: user, Token: token})
	}
}

// RegisterUsersHandler registers the users route
func RegisterUsersHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/users", h)
}

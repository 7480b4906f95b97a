package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-diet-planner/internal/jwt"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	mockTokener := NewMockSessionTokener(ctrl)
	cookie := NewSessionCookie(false, 7*24*time.Hour)

	user := &models.User{ID: "u-1", Email: strPtr("john@example.com"), Username: strPtr("john")}

	tests := []struct {
		name         string
		method       string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "login success",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "login", Email: "john@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "john@example.com", "pass123").Return(user, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &UserResponse{User: user, Token: "JWT_TOKEN"},
		},
		{
			name:      "login wrong password",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "login", Email: "john@example.com", Password: "nope"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "john@example.com", "nope").Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Invalid email or password"},
		},
		{
			name:      "login unknown email looks the same",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "login", Email: "ghost@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "ghost@example.com", "pass123").Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Invalid email or password"},
		},
		{
			name:      "register success",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "register", Email: "john@example.com", Password: "pass123", Username: "john", DeviceID: "abc-123"},
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), "john@example.com", "pass123", "john", "abc-123").Return(user, "JWT_TOKEN", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &UserResponse{User: user, Token: "JWT_TOKEN"},
		},
		{
			name:      "register duplicate email",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "register", Email: "john@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), "john@example.com", "pass123", "", "").Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "User already exists"},
		},
		{
			name:      "register invalid input",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "register", Email: "not-an-email", Password: "1"},
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), "not-an-email", "1", "", "").Return(nil, "", services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid input"},
		},
		{
			name:         "logout",
			method:       http.MethodPost,
			inputBody:    AuthRequest{Action: "logout"},
			mockSetup:    func() {},
			expectedCode: http.StatusOK,
			expectedBody: &SuccessResponse{Success: true},
		},
		{
			name:   "me via GET",
			method: http.MethodGet,
			mockSetup: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("JWT_TOKEN", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "JWT_TOKEN").Return(&jwt.Claims{UserID: "u-1"}, nil)
				mockSvc.EXPECT().Me(gomock.Any(), "u-1").Return(user, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &UserResponse{User: user},
		},
		{
			name:      "me via action without token",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "me"},
			mockSetup: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
		},
		{
			name:   "me with expired token",
			method: http.MethodGet,
			mockSetup: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("OLD", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "OLD").Return(nil, jwt.ErrTokenInvalid)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
		},
		{
			name:   "me for vanished user",
			method: http.MethodGet,
			mockSetup: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("JWT_TOKEN", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "JWT_TOKEN").Return(&jwt.Claims{UserID: "gone"}, nil)
				mockSvc.EXPECT().Me(gomock.Any(), "gone").Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Unauthorized"},
		},
		{
			name:         "unknown action",
			method:       http.MethodPost,
			inputBody:    AuthRequest{Action: "reset"},
			mockSetup:    func() {},
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: &ErrorResponse{Error: "Unknown action"},
		},
		{
			name:         "invalid JSON",
			method:       http.MethodPost,
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "internal error",
			method:    http.MethodPost,
			inputBody: AuthRequest{Action: "login", Email: "john@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().Login(gomock.Any(), "john@example.com", "pass123").Return(nil, "", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case nil:
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(tt.method, "/api/auth", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewAuthHandler(mockSvc, mockTokener, cookie).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedBody.(type) {
			case *UserResponse:
				respBody = &UserResponse{}
			case *SuccessResponse:
				respBody = &SuccessResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), respBody))
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestAuthHandler_Cookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	handler := NewAuthHandler(mockSvc, NewMockSessionTokener(ctrl), NewSessionCookie(true, 7*24*time.Hour))

	t.Run("login sets strict secure cookie in production", func(t *testing.T) {
		mockSvc.EXPECT().Login(gomock.Any(), "john@example.com", "pass123").
			Return(&models.User{ID: "u-1"}, "JWT_TOKEN", nil)

		body, _ := json.Marshal(AuthRequest{Action: "login", Email: "john@example.com", Password: "pass123"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth", bytes.NewReader(body)))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
		assert.Equal(t, 7*24*60*60, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	})

	t.Run("logout expires cookie", func(t *testing.T) {
		body, _ := json.Marshal(AuthRequest{Action: "logout"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth", bytes.NewReader(body)))

		assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Less(t, cookies[0].MaxAge, 0)
	})
}

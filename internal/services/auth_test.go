package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		deviceID string
		setup    func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator)
		wantID   string
		wantErr  error
	}{
		{
			name:     "new account without device",
			email:    " Alice@Example.com ",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				w.EXPECT().CreateRegistered(gomock.Any(), gomock.Any(), gomock.Nil(), "alice@example.com", "alice", gomock.Any()).
					Return(&models.User{ID: "u-new"}, nil)
				j.EXPECT().Generate(gomock.Any(), "u-new").Return("tok", nil)
			},
			wantID: "u-new",
		},
		{
			name:     "anonymous device row is upgraded in place",
			email:    "alice@example.com",
			password: "pass123",
			deviceID: "abc-123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				w.EXPECT().UpgradeDevice(gomock.Any(), "abc-123", "alice@example.com", "alice", gomock.Any()).
					Return(&models.User{ID: "u-anon"}, nil)
				j.EXPECT().Generate(gomock.Any(), "u-anon").Return("tok", nil)
			},
			wantID: "u-anon",
		},
		{
			name:     "device without anonymous row falls back to insert",
			email:    "alice@example.com",
			password: "pass123",
			deviceID: "abc-123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				w.EXPECT().UpgradeDevice(gomock.Any(), "abc-123", "alice@example.com", "alice", gomock.Any()).Return(nil, nil)
				r.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(nil, nil)
				w.EXPECT().CreateRegistered(gomock.Any(), gomock.Any(), strPtr("abc-123"), "alice@example.com", "alice", gomock.Any()).
					Return(&models.User{ID: "u-new"}, nil)
				j.EXPECT().Generate(gomock.Any(), "u-new").Return("tok", nil)
			},
			wantID: "u-new",
		},
		{
			name:     "device owned by a registered row is left with its owner",
			email:    "alice@example.com",
			password: "pass123",
			deviceID: "abc-123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				w.EXPECT().UpgradeDevice(gomock.Any(), "abc-123", "alice@example.com", "alice", gomock.Any()).Return(nil, nil)
				r.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(&models.User{ID: "u-bob", Email: strPtr("bob@example.com")}, nil)
				w.EXPECT().CreateRegistered(gomock.Any(), gomock.Any(), gomock.Nil(), "alice@example.com", "alice", gomock.Any()).
					Return(&models.User{ID: "u-new"}, nil)
				j.EXPECT().Generate(gomock.Any(), "u-new").Return("tok", nil)
			},
			wantID: "u-new",
		},
		{
			name:     "email already registered",
			email:    "alice@example.com",
			password: "pass123",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter, j *services.MockJWTGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(&models.User{ID: "u-1"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "pass123",
			setup:    func(*services.MockUserReader, *services.MockUserWriter, *services.MockJWTGenerator) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    "alice@example.com",
			password: "123",
			setup:    func(*services.MockUserReader, *services.MockUserWriter, *services.MockJWTGenerator) {},
			wantErr:  services.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)
			tt.setup(reader, writer, jwt)

			svc := services.NewAuthService(reader, writer, jwt)
			user, token, err := svc.Register(context.Background(), tt.email, tt.password, "alice", tt.deviceID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	registered := &models.User{ID: "u-1", Email: strPtr("bob@example.com"), PasswordHash: strPtr(string(hash))}
	bridgedOnly := &models.User{ID: "u-2", Email: strPtr("neo@example.com")}

	tests := []struct {
		name     string
		email    string
		password string
		found    *models.User
		findErr  error
		wantErr  error
	}{
		{name: "correct password", email: "bob@example.com", password: "secret1", found: registered},
		{name: "wrong password", email: "bob@example.com", password: "nope", found: registered, wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "secret1", wantErr: services.ErrInvalidCredentials},
		{name: "account without password", email: "neo@example.com", password: "secret1", found: bridgedOnly, wantErr: services.ErrInvalidCredentials},
		{name: "store failure", email: "bob@example.com", password: "secret1", findErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)

			reader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				jwt.EXPECT().Generate(gomock.Any(), tt.found.ID).Return("tok", nil)
			}

			svc := services.NewAuthService(reader, writer, jwt)
			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found.ID, user.ID)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	reader.EXPECT().GetByID(gomock.Any(), "u-1").Return(&models.User{ID: "u-1"}, nil)
	user, err := svc.Me(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	reader.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, nil)
	_, err = svc.Me(context.Background(), "gone")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

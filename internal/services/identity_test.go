package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityMocks struct {
	reader   *services.MockIdentityReader
	writer   *services.MockIdentityWriter
	verifier *services.MockIdentityVerifier
	jwt      *services.MockJWTGenerator
}

func newIdentityService(t *testing.T) (*services.IdentityService, identityMocks) {
	ctrl := gomock.NewController(t)
	m := identityMocks{
		reader:   services.NewMockIdentityReader(ctrl),
		writer:   services.NewMockIdentityWriter(ctrl),
		verifier: services.NewMockIdentityVerifier(ctrl),
		jwt:      services.NewMockJWTGenerator(ctrl),
	}
	return services.NewIdentityService(m.reader, m.writer, m.verifier, m.jwt), m
}

func TestIdentityService_Bootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("existing device", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(&models.User{ID: "u-1", IsAnonymous: true}, nil)
		m.jwt.EXPECT().Generate(gomock.Any(), "u-1").Return("tok", nil)

		user, token, err := svc.Bootstrap(ctx, "abc-123")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "tok", token)
	})

	t.Run("first contact creates a guest", func(t *testing.T) {
		svc, m := newIdentityService(t)
		gomock.InOrder(
			m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(nil, nil),
			m.writer.EXPECT().CreateAnonymous(gomock.Any(), gomock.Any(), "abc-123", gomock.Any()).
				DoAndReturn(func(_ context.Context, id, _ string, username string) (bool, error) {
					assert.NotEmpty(t, id)
					assert.True(t, strings.HasPrefix(username, "Guest-"))
					assert.Len(t, username, len("Guest-")+8)
					return true, nil
				}),
			m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(&models.User{ID: "u-2", IsAnonymous: true}, nil),
		)
		m.jwt.EXPECT().Generate(gomock.Any(), "u-2").Return("tok", nil)

		user, _, err := svc.Bootstrap(ctx, "abc-123")
		require.NoError(t, err)
		assert.Equal(t, "u-2", user.ID)
	})

	t.Run("lost race returns the winner's row", func(t *testing.T) {
		svc, m := newIdentityService(t)
		gomock.InOrder(
			m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(nil, nil),
			m.writer.EXPECT().CreateAnonymous(gomock.Any(), gomock.Any(), "abc-123", gomock.Any()).Return(false, nil),
			m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(&models.User{ID: "winner", IsAnonymous: true}, nil),
		)
		m.jwt.EXPECT().Generate(gomock.Any(), "winner").Return("tok", nil)

		user, _, err := svc.Bootstrap(ctx, "abc-123")
		require.NoError(t, err)
		assert.Equal(t, "winner", user.ID)
	})

	t.Run("refetch finds nothing", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.reader.EXPECT().GetByDeviceID(gomock.Any(), "abc-123").Return(nil, nil).Times(2)
		m.writer.EXPECT().CreateAnonymous(gomock.Any(), gomock.Any(), "abc-123", gomock.Any()).Return(false, nil)

		_, _, err := svc.Bootstrap(ctx, "abc-123")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("device of a registered account gets no session", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.reader.EXPECT().GetByDeviceID(gomock.Any(), "ext-1").
			Return(&models.User{ID: "ext-1", DeviceID: strPtr("ext-1"), IsAnonymous: false}, nil)

		user, token, err := svc.Bootstrap(ctx, "ext-1")
		assert.ErrorIs(t, err, services.ErrInvalidIdentity)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("blank device id", func(t *testing.T) {
		svc, _ := newIdentityService(t)
		_, _, err := svc.Bootstrap(ctx, "  ")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestIdentityService_Sync(t *testing.T) {
	device := "abc-123"
	claimed := models.ExternalIdentity{UserID: "ext-1", Email: "A@B.com", Username: "Bob", DeviceID: &device}
	normalized := claimed
	normalized.Email = "a@b.com"

	tests := []struct {
		name   string
		setup  func(m identityMocks)
		wantID string
	}{
		{
			name: "anonymous device is upgraded",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(&models.User{ID: "anon"}, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(nil, nil)
				m.writer.EXPECT().UpgradeAnonymousExternal(gomock.Any(), "anon", normalized).Return(&models.User{ID: "anon"}, nil)
			},
			wantID: "anon",
		},
		{
			name: "second device of a bridged account joins it",
			setup: func(m identityMocks) {
				gomock.InOrder(
					m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(&models.User{ID: "first-device"}, nil),
					m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(&models.User{ID: "anon"}, nil),
					m.writer.EXPECT().TransferOwnedData(gomock.Any(), "anon", "first-device").Return(nil),
					m.writer.EXPECT().RefreshExternal(gomock.Any(), "first-device", normalized).Return(&models.User{ID: "first-device"}, nil),
				)
			},
			wantID: "first-device",
		},
		{
			name: "guest data joins the legacy account with the same email",
			setup: func(m identityMocks) {
				gomock.InOrder(
					m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil),
					m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(&models.User{ID: "anon"}, nil),
					m.reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(&models.User{ID: "legacy"}, nil),
					m.writer.EXPECT().TransferOwnedData(gomock.Any(), "anon", "legacy").Return(nil),
					m.reader.EXPECT().GetLegacyByEmail(gomock.Any(), "a@b.com").Return(&models.User{ID: "legacy"}, nil),
					m.writer.EXPECT().LinkLegacy(gomock.Any(), "legacy", "ext-1").Return(&models.User{ID: "legacy"}, nil),
				)
			},
			wantID: "legacy",
		},
		{
			name: "legacy password account is linked",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(nil, nil)
				m.reader.EXPECT().GetLegacyByEmail(gomock.Any(), "a@b.com").Return(&models.User{ID: "legacy"}, nil)
				m.writer.EXPECT().LinkLegacy(gomock.Any(), "legacy", "ext-1").Return(&models.User{ID: "legacy"}, nil)
			},
			wantID: "legacy",
		},
		{
			name: "bridged account is refreshed",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(&models.User{ID: "bridged"}, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(nil, nil)
				m.writer.EXPECT().RefreshExternal(gomock.Any(), "bridged", normalized).Return(&models.User{ID: "bridged"}, nil)
			},
			wantID: "bridged",
		},
		{
			name: "row keyed by the external id is linked",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(nil, nil)
				m.reader.EXPECT().GetLegacyByEmail(gomock.Any(), "a@b.com").Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), "ext-1").Return(&models.User{ID: "ext-1"}, nil)
				m.writer.EXPECT().RefreshExternal(gomock.Any(), "ext-1", normalized).Return(&models.User{ID: "ext-1"}, nil)
			},
			wantID: "ext-1",
		},
		{
			name: "email only match is linked",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(nil, nil)
				m.reader.EXPECT().GetLegacyByEmail(gomock.Any(), "a@b.com").Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(&models.User{ID: "by-email"}, nil)
				m.writer.EXPECT().RefreshExternal(gomock.Any(), "by-email", normalized).Return(&models.User{ID: "by-email"}, nil)
			},
			wantID: "by-email",
		},
		{
			name: "no match creates a row keyed by the external id",
			setup: func(m identityMocks) {
				m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(nil, nil)
				m.reader.EXPECT().GetLegacyByEmail(gomock.Any(), "a@b.com").Return(nil, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), "ext-1").Return(nil, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(nil, nil)
				m.writer.EXPECT().UpsertExternal(gomock.Any(), normalized).Return(&models.User{
					ID:              "ext-1",
					DeviceID:        strPtr("ext-1"),
					NeonUserID:      strPtr("ext-1"),
					MigrationStatus: strPtr(models.MigrationStatusNew),
				}, nil)
			},
			wantID: "ext-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newIdentityService(t)
			m.verifier.EXPECT().Enabled().Return(false)
			m.writer.EXPECT().LockIdentity(gomock.Any(), "identity:ext-1").Return(nil)
			tt.setup(m)
			m.jwt.EXPECT().Generate(gomock.Any(), tt.wantID).Return("tok", nil)

			user, token, err := svc.Sync(context.Background(), services.SyncRequest{Claimed: claimed})
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestIdentityService_Sync_Verified(t *testing.T) {
	svc, m := newIdentityService(t)
	device := "abc-123"

	m.verifier.EXPECT().Enabled().Return(true)
	m.verifier.EXPECT().Verify(gomock.Any(), "provider-token").
		Return(&models.ExternalIdentity{UserID: "ext-real", Email: "real@b.com"}, nil)
	m.writer.EXPECT().LockIdentity(gomock.Any(), "identity:ext-real").Return(nil)
	m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-real").Return(nil, nil)
	m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(&models.User{ID: "anon"}, nil)
	m.reader.EXPECT().GetByEmail(gomock.Any(), "real@b.com").Return(nil, nil)
	m.writer.EXPECT().UpgradeAnonymousExternal(gomock.Any(), "anon", models.ExternalIdentity{
		UserID: "ext-real", Email: "real@b.com", DeviceID: &device,
	}).Return(&models.User{ID: "anon"}, nil)
	m.jwt.EXPECT().Generate(gomock.Any(), "anon").Return("tok", nil)

	_, _, err := svc.Sync(context.Background(), services.SyncRequest{
		ProviderToken: "provider-token",
		Claimed:       models.ExternalIdentity{UserID: "forged", DeviceID: &device},
	})
	require.NoError(t, err)
}

func TestIdentityService_Sync_Errors(t *testing.T) {
	t.Run("missing external id", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.verifier.EXPECT().Enabled().Return(false)

		_, _, err := svc.Sync(context.Background(), services.SyncRequest{})
		assert.ErrorIs(t, err, services.ErrInvalidIdentity)
	})

	t.Run("provider rejects token", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.verifier.EXPECT().Enabled().Return(true)
		m.verifier.EXPECT().Verify(gomock.Any(), "bad").Return(nil, services.ErrInvalidIdentity)

		_, _, err := svc.Sync(context.Background(), services.SyncRequest{ProviderToken: "bad"})
		assert.ErrorIs(t, err, services.ErrInvalidIdentity)
	})

	t.Run("lookup failure stops the chain", func(t *testing.T) {
		svc, m := newIdentityService(t)
		m.verifier.EXPECT().Enabled().Return(false)
		m.writer.EXPECT().LockIdentity(gomock.Any(), "identity:ext-1").Return(nil)
		m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(nil, errors.New("db down"))

		_, _, err := svc.Sync(context.Background(), services.SyncRequest{Claimed: models.ExternalIdentity{UserID: "ext-1"}})
		assert.EqualError(t, err, "db down")
	})

	t.Run("moving guest data fails", func(t *testing.T) {
		svc, m := newIdentityService(t)
		device := "abc-123"
		m.verifier.EXPECT().Enabled().Return(false)
		m.writer.EXPECT().LockIdentity(gomock.Any(), "identity:ext-1").Return(nil)
		m.reader.EXPECT().GetByNeonUserID(gomock.Any(), "ext-1").Return(&models.User{ID: "first-device"}, nil)
		m.reader.EXPECT().GetAnonymousByDeviceID(gomock.Any(), device).Return(&models.User{ID: "anon"}, nil)
		m.writer.EXPECT().TransferOwnedData(gomock.Any(), "anon", "first-device").Return(errors.New("db down"))

		_, _, err := svc.Sync(context.Background(), services.SyncRequest{
			Claimed: models.ExternalIdentity{UserID: "ext-1", DeviceID: &device},
		})
		assert.EqualError(t, err, "db down")
	})
}

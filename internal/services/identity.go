package services

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// IdentityReader looks up candidate rows during reconciliation.
type IdentityReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAnonymousByDeviceID(ctx context.Context, deviceID string) (*models.User, error)
	GetLegacyByEmail(ctx context.Context, email string) (*models.User, error)
	GetByNeonUserID(ctx context.Context, neonUserID string) (*models.User, error)
}

// IdentityWriter applies the outcome of reconciliation.
type IdentityWriter interface {
	CreateAnonymous(ctx context.Context, id, deviceID, username string) (bool, error)
	UpgradeAnonymousExternal(ctx context.Context, id string, ext models.ExternalIdentity) (*models.User, error)
	LinkLegacy(ctx context.Context, id, neonUserID string) (*models.User, error)
	RefreshExternal(ctx context.Context, id string, ext models.ExternalIdentity) (*models.User, error)
	UpsertExternal(ctx context.Context, ext models.ExternalIdentity) (*models.User, error)
	TransferOwnedData(ctx context.Context, fromID, toID string) error
	LockIdentity(ctx context.Context, key string) error
}

// IdentityVerifier resolves a provider access token into an identity.
type IdentityVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) (*models.ExternalIdentity, error)
}

// SyncRequest is what a client sends after signing in with the provider.
// Claimed is only trusted when no verifier endpoint is configured.
type SyncRequest struct {
	ProviderToken string
	Claimed       models.ExternalIdentity
}

// IdentityService issues anonymous device accounts and bridges them to the
// external identity provider.
type IdentityService struct {
	reader   IdentityReader
	writer   IdentityWriter
	verifier IdentityVerifier
	jwt      JWTGenerator
}

func NewIdentityService(reader IdentityReader, writer IdentityWriter, verifier IdentityVerifier, jwt JWTGenerator) *IdentityService {
	return &IdentityService{
		reader:   reader,
		writer:   writer,
		verifier: verifier,
		jwt:      jwt,
	}
}

func guestUsername() string {
	return "Guest-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Bootstrap returns the anonymous account bound to deviceID, creating it on
// first contact. Concurrent first contacts converge on a single row. A device
// bound to a registered or bridged account yields ErrInvalidIdentity: those
// sessions come from login or sync only.
func (s *IdentityService) Bootstrap(ctx context.Context, deviceID string) (*models.User, string, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, "", ErrInvalidInput
	}

	user, err := s.reader.GetByDeviceID(ctx, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to get user by device", "device_id", deviceID, "err", err)
		return nil, "", err
	}

	if user == nil {
		created, err := s.writer.CreateAnonymous(ctx, uuid.NewString(), deviceID, guestUsername())
		if err != nil {
			logger.Log.Errorw("failed to create anonymous user", "device_id", deviceID, "err", err)
			return nil, "", err
		}
		if !created {
			logger.Log.Infow("device registered concurrently, refetching", "device_id", deviceID)
		}

		user, err = s.reader.GetByDeviceID(ctx, deviceID)
		if err != nil {
			logger.Log.Errorw("failed to refetch user by device", "device_id", deviceID, "err", err)
			return nil, "", err
		}
		if user == nil {
			return nil, "", ErrNotFound
		}
	}

	if !user.IsAnonymous {
		logger.Log.Infow("device belongs to a registered account", "device_id", deviceID, "user_id", user.ID)
		return nil, "", ErrInvalidIdentity
	}

	return s.issue(ctx, user)
}

// Sync reconciles an external identity with the identity store. The first
// matching rule wins:
//  1. anonymous row on the same device is upgraded in place, unless another
//     row already holds the external id or email; then the guest's plans and
//     schedules move to that row and the later rules apply
//  2. password account with the same email is linked, unless the external id
//     is already bridged to another row
//  3. row already bridged to the external id is refreshed
//  4. row whose id is the external id is linked
//  5. row with the same email is linked
//  6. otherwise a row keyed by the external id is created
func (s *IdentityService) Sync(ctx context.Context, req SyncRequest) (*models.User, string, error) {
	ext, err := s.resolve(ctx, req)
	if err != nil {
		return nil, "", err
	}

	if err := s.writer.LockIdentity(ctx, "identity:"+ext.UserID); err != nil {
		logger.Log.Errorw("failed to lock identity", "neon_user_id", ext.UserID, "err", err)
		return nil, "", err
	}

	user, rule, err := s.reconcile(ctx, ext)
	if err != nil {
		logger.Log.Errorw("identity sync failed", "neon_user_id", ext.UserID, "rule", rule, "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrNotFound
	}
	logger.Log.Infow("identity synced", "neon_user_id", ext.UserID, "user_id", user.ID, "rule", rule)

	return s.issue(ctx, user)
}

func (s *IdentityService) resolve(ctx context.Context, req SyncRequest) (models.ExternalIdentity, error) {
	ext := req.Claimed
	if s.verifier != nil && s.verifier.Enabled() {
		verified, err := s.verifier.Verify(ctx, req.ProviderToken)
		if err != nil {
			return models.ExternalIdentity{}, err
		}
		ext = *verified
		ext.DeviceID = req.Claimed.DeviceID
	}

	ext.UserID = strings.TrimSpace(ext.UserID)
	ext.Email = normalizeEmail(ext.Email)
	if ext.UserID == "" {
		return models.ExternalIdentity{}, ErrInvalidIdentity
	}
	return ext, nil
}

func (s *IdentityService) reconcile(ctx context.Context, ext models.ExternalIdentity) (*models.User, string, error) {
	bridged, err := s.reader.GetByNeonUserID(ctx, ext.UserID)
	if err != nil {
		return nil, "bridged", err
	}

	if ext.DeviceID != nil && *ext.DeviceID != "" {
		anon, err := s.reader.GetAnonymousByDeviceID(ctx, *ext.DeviceID)
		if err != nil {
			return nil, "device", err
		}
		if anon != nil {
			owner, err := s.owner(ctx, ext, bridged)
			if err != nil {
				return nil, "device", err
			}
			if owner == nil || owner.ID == anon.ID {
				user, err := s.writer.UpgradeAnonymousExternal(ctx, anon.ID, ext)
				return user, "device", err
			}

			// The identity already has a home: the device's guest data joins it
			// and the remaining rules link that row.
			if err := s.writer.TransferOwnedData(ctx, anon.ID, owner.ID); err != nil {
				return nil, "device", err
			}
			logger.Log.Infow("guest data moved to existing account", "from", anon.ID, "to", owner.ID)
		}
	}

	if ext.Email != "" && bridged == nil {
		legacy, err := s.reader.GetLegacyByEmail(ctx, ext.Email)
		if err != nil {
			return nil, "legacy", err
		}
		if legacy != nil {
			user, err := s.writer.LinkLegacy(ctx, legacy.ID, ext.UserID)
			return user, "legacy", err
		}
	}

	if bridged != nil {
		user, err := s.writer.RefreshExternal(ctx, bridged.ID, ext)
		return user, "bridged", err
	}

	byID, err := s.reader.GetByID(ctx, ext.UserID)
	if err != nil {
		return nil, "row_id", err
	}
	if byID != nil {
		user, err := s.writer.RefreshExternal(ctx, byID.ID, ext)
		return user, "row_id", err
	}

	if ext.Email != "" {
		byEmail, err := s.reader.GetByEmail(ctx, ext.Email)
		if err != nil {
			return nil, "email", err
		}
		if byEmail != nil {
			user, err := s.writer.RefreshExternal(ctx, byEmail.ID, ext)
			return user, "email", err
		}
	}

	user, err := s.writer.UpsertExternal(ctx, ext)
	return user, "new", err
}

// owner finds a row other than a guest that already holds the identity.
func (s *IdentityService) owner(ctx context.Context, ext models.ExternalIdentity, bridged *models.User) (*models.User, error) {
	if bridged != nil {
		return bridged, nil
	}
	if ext.Email == "" {
		return nil, nil
	}
	return s.reader.GetByEmail(ctx, ext.Email)
}

func (s *IdentityService) issue(ctx context.Context, user *models.User) (*models.User, string, error) {
	if user == nil {
		return nil, "", ErrNotFound
	}
	token, err := s.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}
	return user, token, nil
}

package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*models.User, error)
}

// UserWriter defines write operations for password accounts.
type UserWriter interface {
	UpgradeDevice(ctx context.Context, deviceID, email, username, passwordHash string) (*models.User, error)
	CreateRegistered(ctx context.Context, id string, deviceID *string, email, username, passwordHash string) (*models.User, error)
}

// JWTGenerator issues session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// AuthService handles legacy password registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a password account. When deviceID names an anonymous row,
// that row is upgraded in place so its saved data stays with the user. A device
// already owned by a registered row is not rebound to the new account.
func (svc *AuthService) Register(ctx context.Context, email, password, username, deviceID string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || len(password) < minPasswordLength {
		return nil, "", ErrInvalidInput
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	var user *models.User
	if deviceID != "" {
		user, err = svc.writer.UpgradeDevice(ctx, deviceID, email, username, string(hashedPassword))
		if err != nil {
			logger.Log.Errorw("failed to upgrade anonymous user", "device_id", deviceID, "err", err)
			return nil, "", err
		}
	}
	if user == nil {
		var device *string
		if deviceID != "" {
			owner, err := svc.reader.GetByDeviceID(ctx, deviceID)
			if err != nil {
				logger.Log.Errorw("failed to get user by device", "device_id", deviceID, "err", err)
				return nil, "", err
			}
			if owner == nil {
				device = &deviceID
			} else {
				logger.Log.Infow("device owned by another account, registering without it", "device_id", deviceID, "owner", owner.ID)
			}
		}
		user, err = svc.writer.CreateRegistered(ctx, uuid.NewString(), device, email, username, string(hashedPassword))
		if err != nil {
			logger.Log.Errorw("failed to save user", "err", err)
			return nil, "", err
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by email and password. Unknown email, missing
// credential and wrong password all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil || !user.HasPassword() {
		logger.Log.Infow("login rejected", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Me returns the user a session resolves to.
func (svc *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

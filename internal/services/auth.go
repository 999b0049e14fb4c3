package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, email string, passwordHash string) error
}

// Tokener defines the token operations the auth service depends on.
type Tokener interface {
	Generate(ctx context.Context, username string, userID int64) (string, error)
	Parse(ctx context.Context, tokenString string) (string, int64, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user. Only a bcrypt hash of the password is stored.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique constraint settles the race.
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns the user together with a signed token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Resolve validates a bearer token and returns the user it names. Any parse
// failure, expired token or vanished user resolves to ErrInvalidToken.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.UserDB, error) {
	username, _, err := svc.jwt.Parse(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to parse token", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user for token", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("token names unknown user", "username", username)
		return nil, ErrInvalidToken
	}

	return user, nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/models"
	"github.com/avazquez/tienda-api/internal/validation"
)

// Error variables
var (
	ErrInvalidEmail       = errors.New("email address format")
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) error
}

// TokenStore manages opaque session tokens.
type TokenStore interface {
	GetByUsername(ctx context.Context, username string) (string, error)
	GetUsername(ctx context.Context, token string) (string, error)
	Save(ctx context.Context, username, token string) error
	Delete(ctx context.Context, token string) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenStore) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password. The email must match
// the accepted format and neither the username nor the email may be taken.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	if !validation.ValidateEmail(email) {
		logger.Log.Errorw("invalid email format", "email", email)
		return ErrInvalidEmail
	}

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
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login verifies the credentials and returns the user's session token.
// While a token is live, repeated logins return the same token; otherwise
// a new one is issued. Unknown usernames and wrong passwords are not
// distinguished.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up token", "err", err)
		return "", err
	}
	if token != "" {
		return token, nil
	}

	token = uuid.NewString()
	if err := svc.tokens.Save(ctx, username, token); err != nil {
		logger.Log.Errorw("failed to save token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes a live token. A token that is not live, including one
// already revoked by a previous logout, yields ErrInvalidToken.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	username, err := svc.tokens.GetUsername(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up token", "err", err)
		return err
	}
	if username == "" {
		logger.Log.Errorw("token is not live")
		return ErrInvalidToken
	}

	if err := svc.tokens.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete token", "err", err)
		return err
	}

	return nil
}

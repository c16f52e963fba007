package services

import (
	"errors"
	"fmt"

	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/models"
)

// CredentialStore is the persistence boundary the authentication flows need:
// an exact-username lookup returning the stored hash, and a hash-only update.
type CredentialStore interface {
	FindByUsername(username string) (models.User, error)
	UpdatePasswordHash(username, newHash string) error
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Login(username, password string) (string, models.User, error)
	ChangePassword(username, oldPassword, newPassword string) error
}

// AuthService verifies credentials, issues session tokens, and handles
// password changes.
type AuthService struct {
	store CredentialStore
	codec *auth.TokenCodec
}

// NewAuthService creates a new AuthService.
func NewAuthService(store CredentialStore, codec *auth.TokenCodec) *AuthService {
	return &AuthService{store: store, codec: codec}
}

// Login verifies a username/password pair and issues a session token. A
// missing user and a wrong password produce the same ErrInvalidCredentials;
// only infrastructure failures surface as ErrStoreUnavailable. The returned
// user has the password hash blanked.
func (s *AuthService) Login(username, password string) (string, models.User, error) {
	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.codec.Encode(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// ChangePassword re-verifies the old password before hashing and persisting
// the new one. Only the hash column changes; tokens issued before the change
// remain valid until their own expiry, since sessions are stateless.
func (s *AuthService) ChangePassword(username, oldPassword, newPassword string) error {
	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdate, err)
	}

	if err := s.store.UpdatePasswordHash(username, newHash); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

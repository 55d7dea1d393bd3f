package keyring

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wellfit/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no session token is stored
	ErrNotFound = errors.New("session token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetToken retrieves the session token stored for user.
// Returns ErrNotFound if no token is stored.
func GetToken(user string) (string, error) {
	token, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken stores the session token for user.
func SetToken(user, token string) error {
	if token == "" {
		return errors.New("session token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, user, token); err != nil {
		return fmt.Errorf("failed to store session token in keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the session token for user.
func DeleteToken(user string) error {
	err := keyring.Delete(constants.AppName, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// TokenStore persists one session token in the OS keyring. Its zero value
// uses the default keyring entry.
type TokenStore struct {
	User string
}

func NewTokenStore(user string) *TokenStore {
	return &TokenStore{User: user}
}

func (s *TokenStore) user() string {
	if s == nil || s.User == "" {
		return constants.DefaultKeyringUser
	}
	return s.User
}

// Load returns the stored token. ok is false when nothing is stored.
func (s *TokenStore) Load() (token string, ok bool, err error) {
	token, err = GetToken(s.user())
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *TokenStore) Save(token string) error {
	return SetToken(s.user(), token)
}

// Clear removes the stored token. Clearing an empty store succeeds.
func (s *TokenStore) Clear() error {
	if err := DeleteToken(s.user()); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

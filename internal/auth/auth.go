// Package auth implements password hashing, admin and chatbot login,
// and session validation for the chat widget.
//
// Chatbot sessions carry no server-side state: a successful login
// returns the login timestamp as an opaque token, and a session stays
// valid while that timestamp is not older than the last password
// change. Changing the chatbot password therefore expires every
// outstanding session at once.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

// Defaults seeded on first run.
const (
	DefaultPassword     = "123"
	DefaultPasswordHint = "Default: 123"
)

// tokenLayout is fixed width so session tokens compare
// chronologically as strings.
const tokenLayout = "2006-01-02T15:04:05.000000"

// HashPassword returns the hex SHA-256 of password+salt.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// NowToken returns the current time formatted as a session token.
func NowToken() string {
	return time.Now().UTC().Format(tokenLayout)
}

// Service verifies passwords and session tokens against the stored
// auth records.
type Service struct {
	store *storage.Store
	salt  string
	now   func() string
}

// New returns a Service backed by the given store.
func New(store *storage.Store, salt string) *Service {
	return &Service{
		store: store,
		salt:  salt,
		now:   NowToken,
	}
}

// EnsureDefaults seeds the admin and chatbot auth records when absent
// so a fresh deployment is immediately usable.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	if _, err := s.store.AdminAuthRecord(ctx); domerrors.IsNotFound(err) {
		rec := storage.AdminAuth{
			PasswordHash: HashPassword(DefaultPassword, s.salt),
			PasswordHint: DefaultPasswordHint,
		}
		if err := s.store.SaveAdminAuth(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed admin auth: %w", err)
		}
	} else if err != nil {
		return err
	}

	if _, err := s.store.ChatAuthRecord(ctx); domerrors.IsNotFound(err) {
		rec := storage.ChatAuth{
			PasswordHash: HashPassword(DefaultPassword, s.salt),
			LastChanged:  s.now(),
		}
		if err := s.store.SaveChatAuth(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed chatbot auth: %w", err)
		}
	} else if err != nil {
		return err
	}
	return nil
}

// VerifyAdmin checks the admin password.
func (s *Service) VerifyAdmin(ctx context.Context, password string) error {
	rec, err := s.store.AdminAuthRecord(ctx)
	if err != nil {
		return domerrors.ErrUnauthorized
	}
	if !hashEqual(HashPassword(password, s.salt), rec.PasswordHash) {
		return domerrors.ErrUnauthorized
	}
	return nil
}

// AdminHint returns the stored password hint, empty when none is set.
func (s *Service) AdminHint(ctx context.Context) string {
	rec, err := s.store.AdminAuthRecord(ctx)
	if err != nil {
		return ""
	}
	return rec.PasswordHint
}

// ChangeAdminPassword verifies the current password and stores a new
// hash and hint.
func (s *Service) ChangeAdminPassword(ctx context.Context, current, next, hint string) error {
	if next == "" {
		return domerrors.NewValidationError("new_password", "new password is required")
	}
	if err := s.VerifyAdmin(ctx, current); err != nil {
		return err
	}
	return s.store.SaveAdminAuth(ctx, storage.AdminAuth{
		PasswordHash: HashPassword(next, s.salt),
		PasswordHint: hint,
	})
}

// ChatLogin checks the chatbot password and returns a session token.
func (s *Service) ChatLogin(ctx context.Context, password string) (string, error) {
	rec, err := s.store.ChatAuthRecord(ctx)
	if err != nil {
		return "", domerrors.ErrUnauthorized
	}
	if !hashEqual(HashPassword(password, s.salt), rec.PasswordHash) {
		return "", domerrors.ErrUnauthorized
	}
	return s.now(), nil
}

// ValidateSession checks a login token against the last chatbot
// password change. Tokens issued before the change are expired, and a
// missing token or auth record always fails.
func (s *Service) ValidateSession(ctx context.Context, loginToken string) error {
	if loginToken == "" {
		return domerrors.ErrSessionExpired
	}
	rec, err := s.store.ChatAuthRecord(ctx)
	if err != nil || rec.LastChanged == "" {
		return domerrors.ErrSessionExpired
	}
	if loginToken < rec.LastChanged {
		return domerrors.ErrSessionExpired
	}
	return nil
}

// ChangeChatPassword verifies the admin password, stores the new
// chatbot password hash, and stamps the change so existing sessions
// expire.
func (s *Service) ChangeChatPassword(ctx context.Context, adminPassword, next string) error {
	if next == "" {
		return domerrors.NewValidationError("new_password", "new password is required")
	}
	if err := s.VerifyAdmin(ctx, adminPassword); err != nil {
		return err
	}
	return s.store.SaveChatAuth(ctx, storage.ChatAuth{
		PasswordHash: HashPassword(next, s.salt),
		LastChanged:  s.now(),
	})
}

func hashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

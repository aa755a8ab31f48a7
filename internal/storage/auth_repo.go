package storage

import (
	"context"
	"encoding/json"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// AdminAuthRecord returns the admin password record. Missing records
// come back as ErrNotFound so callers can seed a default.
func (s *Store) AdminAuthRecord(ctx context.Context) (AdminAuth, error) {
	raw, err := s.Load(ctx, DocAdminAuth)
	if err != nil {
		return AdminAuth{}, err
	}
	var rec AdminAuth
	if err := json.Unmarshal(raw, &rec); err != nil || rec.PasswordHash == "" {
		return AdminAuth{}, domerrors.ErrNotFound
	}
	return rec, nil
}

// SaveAdminAuth replaces the admin password record.
func (s *Store) SaveAdminAuth(ctx context.Context, rec AdminAuth) error {
	return s.Save(ctx, DocAdminAuth, rec)
}

// ChatAuthRecord returns the chatbot login record. Legacy or missing
// records come back as ErrNotFound so callers can force a reset.
func (s *Store) ChatAuthRecord(ctx context.Context) (ChatAuth, error) {
	raw, err := s.Load(ctx, DocChatAuth)
	if err != nil {
		return ChatAuth{}, err
	}
	var rec ChatAuth
	if err := json.Unmarshal(raw, &rec); err != nil || rec.PasswordHash == "" || rec.LastChanged == "" {
		return ChatAuth{}, domerrors.ErrNotFound
	}
	return rec, nil
}

// SaveChatAuth replaces the chatbot login record.
func (s *Store) SaveChatAuth(ctx context.Context, rec ChatAuth) error {
	return s.Save(ctx, DocChatAuth, rec)
}

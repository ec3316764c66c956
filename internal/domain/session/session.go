// Package session keeps the signed-in doctor's display name. It is a
// cosmetic flag for the shell header, not authentication.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/platform/kvstore"
)

// Key is the store key holding the doctor's name.
const Key = "doctorName"

// DefaultName is shown when nobody is signed in.
const DefaultName = "Doctor"

var ErrMissingEmail = errors.New("email is required")

type Session struct {
	store  kvstore.Store
	logger zerolog.Logger
}

func New(store kvstore.Store, logger zerolog.Logger) *Session {
	return &Session{store: store, logger: logger.With().Str("component", "session").Logger()}
}

// Login stores the local part of email as the doctor's name and returns it.
// The password is not checked.
func (s *Session) Login(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingEmail
	}
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	if name == "" {
		return "", fmt.Errorf("no name before @ in %q", email)
	}

	raw, err := json.Marshal(name)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, Key, raw); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	s.logger.Info().Str("doctor", name).Msg("signed in")
	return name, nil
}

// Current returns the signed-in name, or DefaultName. A value that does not
// decode is treated as signed out.
func (s *Session) Current(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, Key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return DefaultName, nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil || name == "" {
		s.logger.Warn().Msg("unreadable session value ignored")
		return DefaultName, nil
	}
	return name, nil
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

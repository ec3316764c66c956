package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/platform/kvstore"
)

func TestLoginCurrentLogout(t *testing.T) {
	store := kvstore.NewMemoryStore()
	s := New(store, zerolog.Nop())
	ctx := context.Background()

	name, err := s.Current(ctx)
	if err != nil || name != DefaultName {
		t.Fatalf("expected %q before login, got %q (%v)", DefaultName, name, err)
	}

	name, err = s.Login(ctx, "  greg.house@ppth.org ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if name != "greg.house" {
		t.Errorf("expected greg.house, got %q", name)
	}
	if got, _ := s.Current(ctx); got != "greg.house" {
		t.Errorf("expected current greg.house, got %q", got)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if got, _ := s.Current(ctx); got != DefaultName {
		t.Errorf("expected %q after logout, got %q", DefaultName, got)
	}
}

func TestLogin_Rejects(t *testing.T) {
	s := New(kvstore.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	if _, err := s.Login(ctx, ""); !errors.Is(err, ErrMissingEmail) {
		t.Errorf("expected ErrMissingEmail, got %v", err)
	}
	if _, err := s.Login(ctx, "@clinic.org"); err == nil {
		t.Error("expected error for email without a local part")
	}
}

func TestLogin_PlainName(t *testing.T) {
	s := New(kvstore.NewMemoryStore(), zerolog.Nop())
	name, err := s.Login(context.Background(), "wilson")
	if err != nil || name != "wilson" {
		t.Errorf("expected wilson, got %q (%v)", name, err)
	}
}

func TestCurrent_UnreadableValue(t *testing.T) {
	store := kvstore.NewMemoryStore()
	s := New(store, zerolog.Nop())
	ctx := context.Background()
	store.Set(ctx, Key, []byte("not-json"))

	name, err := s.Current(ctx)
	if err != nil || name != DefaultName {
		t.Errorf("expected fallback to %q, got %q (%v)", DefaultName, name, err)
	}
}

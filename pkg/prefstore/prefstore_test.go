package prefstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "display_language", "fr"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value, err := s.Get(ctx, "display_language")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "fr" {
		t.Fatalf("expected fr, got %q", value)
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "display_language"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_OverwritesValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Set(ctx, "display_language", "en")
	_ = s.Set(ctx, "display_language", "fr")
	value, err := s.Get(ctx, "display_language")
	if err != nil || value != "fr" {
		t.Fatalf("expected latest value fr, got %q err=%v", value, err)
	}
}

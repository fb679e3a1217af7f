package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetTokenDefaultsTTL(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	for _, ttl := range []time.Duration{0, -time.Hour} {
		sess := New(NewID(), store)
		if err := sess.SetToken(context.Background(), "tok", ttl); err != nil {
			t.Fatalf("SetToken(ttl=%v): %v", ttl, err)
		}
		if got := sess.Token(context.Background()); got != "tok" {
			t.Errorf("ttl %v: token %q not retrievable after defaulted TTL", ttl, got)
		}
	}
}

func TestMemoryStoreHonorsTTL(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	if err := store.Put(context.Background(), "s1", "tok", -time.Second); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := store.Token(context.Background(), "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired token lookup error = %v, want ErrNotFound", err)
	}
}

func TestSetTokenRearmsEviction(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	sess := New(NewID(), store)
	if err := sess.SetToken(context.Background(), "tok", time.Hour); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := sess.Evict(context.Background()); err != nil {
		t.Fatalf("Evict: %v", err)
	}
	if err := sess.SetToken(context.Background(), "tok2", time.Hour); err != nil {
		t.Fatalf("SetToken after evict: %v", err)
	}
	if err := sess.Evict(context.Background()); err != nil {
		t.Fatalf("second Evict: %v", err)
	}
	if got := sess.Token(context.Background()); got != "" {
		t.Errorf("token %q survived eviction", got)
	}
}

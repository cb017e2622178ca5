package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "wm:session:access:" + accessID
}

func newTestManager() (*Manager, *fakeStore) {
	store := newFakeStore()
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}, store
}

func TestGenerateAndHasSession(t *testing.T) {
	m, _ := newTestManager()

	token, err := m.Generate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}

	ok, err := m.HasSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist")
	}

	ok, err = m.HasSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected missing session")
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	m, _ := newTestManager()

	token, err := m.Generate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newID, newToken, err := m.Rotate(context.Background(), "sess-1", token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newID == "sess-1" || newToken == token {
		t.Fatal("rotation must issue a fresh pair")
	}

	if ok, _ := m.HasSession(context.Background(), "sess-1"); ok {
		t.Fatal("old session should be gone after rotation")
	}
	if ok, _ := m.HasSession(context.Background(), newID); !ok {
		t.Fatal("new session should exist after rotation")
	}
}

func TestRotateRejectsWrongToken(t *testing.T) {
	m, _ := newTestManager()
	if _, err := m.Generate(context.Background(), "sess-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := m.Rotate(context.Background(), "sess-1", "forged"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	m, _ := newTestManager()
	if _, err := m.Generate(context.Background(), "sess-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := m.Revoke(context.Background(), "sess-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ok, _ := m.HasSession(context.Background(), "sess-1"); ok {
		t.Fatal("session should be revoked")
	}
}

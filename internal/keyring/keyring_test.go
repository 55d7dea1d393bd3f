package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("alice", "tok-123"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	got, err := GetToken("alice")
	if err != nil {
		t.Fatalf("GetToken() failed: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("GetToken() = %q, want %q", got, "tok-123")
	}
}

func TestSetTokenEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("alice", ""); err == nil {
		t.Error("SetToken with empty token should return an error")
	}
}

func TestGetTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	_, err := GetToken("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("alice", "tok"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	if err := DeleteToken("alice"); err != nil {
		t.Fatalf("DeleteToken() failed: %v", err)
	}
	if _, err := GetToken("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("After DeleteToken(), GetToken() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteToken("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring, want true")
	}
}

func TestTokenStore(t *testing.T) {
	gokeyring.MockInit()
	store := NewTokenStore("")

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("Load() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Save("jwt-abc"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	token, ok, err := store.Load()
	if err != nil || !ok || token != "jwt-abc" {
		t.Fatalf("Load() = %q, %v, %v", token, ok, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store should succeed, got %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Error("token still present after Clear()")
	}
}

func TestTokenStoreMockError(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("dbus down"))
	defer gokeyring.MockInit()

	_, _, err := NewTokenStore("alice").Load()
	if !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("Load() error = %v, want %v", err, ErrKeyringUnavailable)
	}
}

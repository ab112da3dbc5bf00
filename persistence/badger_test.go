package persistence

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func newMemoryBadger(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore()
	if err != nil {
		t.Fatalf("Failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestBadgerLoadBeforeSave(t *testing.T) {
	store := newMemoryBadger(t)
	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestBadgerSaveLoadRoundTrip(t *testing.T) {
	store := newMemoryBadger(t)

	payload := []byte(`{"version":1,"state":{}}`)
	if err := store.Save(payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Expected %q, got %q", payload, got)
	}

	// Overwrite wins
	payload2 := []byte(`{"version":1,"state":{"heartClicks":3}}`)
	if err := store.Save(payload2); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, payload2) {
		t.Errorf("Expected %q, got %q", payload2, got)
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	payload := []byte(`{"version":1,"state":{"naughtyLevel":42}}`)

	store, err := NewBadgerStore(WithDataDir(dir))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Save(payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewBadgerStore(WithDataDir(dir))
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Expected %q after reopen, got %q", payload, got)
	}
}

func TestBadgerCustomKey(t *testing.T) {
	store, err := NewBadgerStore(WithKey("other-key"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.Save([]byte("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("Expected payload under custom key, got %q", got)
	}
}

func TestBadgerWatchDeliversWrites(t *testing.T) {
	store := newMemoryBadger(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan []byte, 4)
	if err := store.Watch(ctx, func(data []byte) {
		received <- data
	}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Subscription setup races with the first write; give it a moment
	time.Sleep(50 * time.Millisecond)

	payload := []byte(`{"version":1,"state":{"heartClicks":9}}`)
	if err := store.Save(payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	select {
	case got := <-received:
		if !bytes.Equal(got, payload) {
			t.Errorf("Expected %q, got %q", payload, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected watch notification")
	}
}

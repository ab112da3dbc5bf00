package state

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lixenwraith/valentine/persistence"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreStartsFromDefaultWhenEmpty(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())

	snap := st.Snapshot()
	if snap.CurrentView != ViewHome {
		t.Errorf("Expected home view, got %v", snap.CurrentView)
	}
	if len(snap.Photos) != 3 {
		t.Errorf("Expected 3 seed photos, got %d", len(snap.Photos))
	}
}

func TestStoreRestoresPersistedState(t *testing.T) {
	s := Default(testPhotos())
	s = IncreaseNaughtyLevel(s, 30)
	s, _ = NavigateTo(s, ViewNaughty)
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	port := persistence.NewMemoryStore()
	port.SetData(data)
	st := NewStore(port, testPhotos(), quietLogger())

	snap := st.Snapshot()
	if snap.NaughtyLevel != 30 {
		t.Errorf("Expected naughty level 30, got %d", snap.NaughtyLevel)
	}
	if snap.CurrentView != ViewNaughty {
		t.Errorf("Expected naughty view, got %v", snap.CurrentView)
	}
}

func TestStoreFallsBackOnMalformedBytes(t *testing.T) {
	port := persistence.NewMemoryStore()
	port.SetData([]byte("definitely not state"))
	st := NewStore(port, testPhotos(), quietLogger())

	snap := st.Snapshot()
	if snap.CurrentView != ViewHome || len(snap.Photos) != 3 {
		t.Errorf("Expected default state, got %+v", snap)
	}
}

func TestStoreFallsBackOnLoadError(t *testing.T) {
	port := persistence.NewMemoryStore()
	port.FailLoads(errors.New("disk on fire"))
	st := NewStore(port, testPhotos(), quietLogger())

	if len(st.Snapshot().Photos) != 3 {
		t.Error("Expected default state on load failure")
	}
}

func TestStoreSavesOnEveryTransition(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())

	st.NavigateTo(ViewGallery)
	st.LikePhoto("1")
	st.HandleHeartClick()

	if port.Saves() != 3 {
		t.Errorf("Expected 3 saves, got %d", port.Saves())
	}

	// Rejected transitions don't save
	st.NavigateTo(View(99))
	if port.Saves() != 3 {
		t.Errorf("Expected rejected transition to skip save, got %d saves", port.Saves())
	}
}

func TestStoreSaveFailureIsNotFatal(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())
	port.FailSaves(errors.New("store unavailable"))

	snap := st.HandleHeartClick()
	if snap.HeartClicks != 1 {
		t.Errorf("Expected transition to apply despite save failure, got %+v", snap)
	}
}

func TestStoreReplaceIsFullReplacement(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())
	st.IncreaseNaughtyLevel(40)

	other := Default(nil)
	other.HeartClicks = 77
	data, err := Encode(other)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	st.Replace(data)

	snap := st.Snapshot()
	if snap.HeartClicks != 77 {
		t.Errorf("Expected replaced clicks 77, got %d", snap.HeartClicks)
	}
	if snap.NaughtyLevel != 0 {
		t.Errorf("Expected wholesale replacement, got merged level %d", snap.NaughtyLevel)
	}
	if len(snap.Photos) != 0 {
		t.Errorf("Expected replaced photo list, got %d photos", len(snap.Photos))
	}
}

func TestStoreReplaceIgnoresMalformed(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())
	st.HandleHeartClick()

	st.Replace([]byte("junk"))

	if st.Snapshot().HeartClicks != 1 {
		t.Error("Expected malformed notification to be ignored")
	}
}

func TestStoreReplaceRejectsDanglingIndex(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, nil, quietLogger())

	// Empty gallery with a nonzero index violates the index invariant;
	// accepting it would make the next AddPhoto leave the index pointing
	// past the end
	st.Replace([]byte(`{"version":1,"state":{"photos":[],"currentPhotoIndex":7}}`))

	snap := st.AddPhoto("photos/new.png", "new")
	if len(snap.Photos) != 1 || snap.CurrentPhotoIndex != 0 {
		t.Fatalf("Expected invariant-violating payload rejected, got %+v", snap)
	}
	// The photo the UI would index must exist
	_ = snap.Photos[snap.CurrentPhotoIndex]
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	port := persistence.NewMemoryStore()
	st := NewStore(port, testPhotos(), quietLogger())

	snap := st.Snapshot()
	snap.Photos[0].Caption = "mutated"

	if st.Snapshot().Photos[0].Caption != "first" {
		t.Error("Expected snapshot mutation to not leak into the store")
	}
}

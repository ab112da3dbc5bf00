package state

import (
	"encoding/json"
	"fmt"
)

// codecVersion is bumped whenever the persisted shape changes. Older
// payloads are rejected and the caller falls back to the default state.
const codecVersion = 1

// envelope wraps the persisted record with an explicit version field so
// future formats can migrate instead of guessing.
type envelope struct {
	Version int         `json:"version"`
	State   stateRecord `json:"state"`
}

type stateRecord struct {
	CurrentView       View          `json:"currentView"`
	Photos            []photoRecord `json:"photos"`
	NaughtyLevel      int           `json:"naughtyLevel"`
	HeartClicks       int           `json:"heartClicks"`
	ShowConfetti      bool          `json:"showConfetti"`
	CurrentPhotoIndex int           `json:"currentPhotoIndex"`
}

type photoRecord struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Caption    string `json:"caption"`
	Likes      int    `json:"likes"`
	IsFavorite bool   `json:"isFavorite"`
}

// Encode serializes a state snapshot into the versioned JSON envelope.
func Encode(s ApplicationState) ([]byte, error) {
	rec := stateRecord{
		CurrentView:       s.CurrentView,
		NaughtyLevel:      s.NaughtyLevel,
		HeartClicks:       s.HeartClicks,
		ShowConfetti:      s.ShowConfetti,
		CurrentPhotoIndex: s.CurrentPhotoIndex,
	}
	if s.Photos != nil {
		rec.Photos = make([]photoRecord, len(s.Photos))
		for i, p := range s.Photos {
			rec.Photos[i] = photoRecord(p)
		}
	}
	return json.Marshal(envelope{Version: codecVersion, State: rec})
}

// Decode parses a persisted payload back into a state value, rejecting
// unknown versions and payloads that violate the state invariants.
func Decode(data []byte) (ApplicationState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ApplicationState{}, fmt.Errorf("decode state: %w", err)
	}
	if env.Version != codecVersion {
		return ApplicationState{}, fmt.Errorf(
			"decode state: unsupported version %d", env.Version)
	}
	rec := env.State
	if !rec.CurrentView.Valid() {
		return ApplicationState{}, fmt.Errorf(
			"decode state: unknown view %d", rec.CurrentView)
	}
	if rec.NaughtyLevel < 0 || rec.NaughtyLevel > MaxNaughtyLevel {
		return ApplicationState{}, fmt.Errorf(
			"decode state: naughty level %d out of range", rec.NaughtyLevel)
	}
	if rec.HeartClicks < 0 {
		return ApplicationState{}, fmt.Errorf(
			"decode state: negative heart clicks %d", rec.HeartClicks)
	}
	// Index invariant: 0 when the gallery is empty, in range otherwise
	if n := len(rec.Photos); rec.CurrentPhotoIndex < 0 ||
		(n == 0 && rec.CurrentPhotoIndex != 0) ||
		(n > 0 && rec.CurrentPhotoIndex >= n) {
		return ApplicationState{}, fmt.Errorf(
			"decode state: photo index %d out of range", rec.CurrentPhotoIndex)
	}
	out := ApplicationState{
		CurrentView:       rec.CurrentView,
		NaughtyLevel:      rec.NaughtyLevel,
		HeartClicks:       rec.HeartClicks,
		ShowConfetti:      rec.ShowConfetti,
		CurrentPhotoIndex: rec.CurrentPhotoIndex,
	}
	if rec.Photos != nil {
		out.Photos = make([]Photo, len(rec.Photos))
		for i, p := range rec.Photos {
			out.Photos[i] = Photo(p)
		}
	}
	return out, nil
}

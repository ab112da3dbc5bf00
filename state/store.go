package state

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/lixenwraith/valentine/persistence"
)

// Store is the single source of truth for application state. Mutations
// go through the transition functions; after every successful transition
// the full state is written to the injected persistence port. Load and
// save failures are logged and recovered locally, never surfaced as
// crashes.
//
// The UI event loop is the only writer in normal operation; the mutex
// exists because external change notifications (persistence.Watcher)
// arrive on their own goroutine and are merged by full replacement.
type Store struct {
	mu     sync.RWMutex
	state  ApplicationState
	port   persistence.Port
	logger *slog.Logger
}

// NewStore restores state from the port, falling back to the default
// built from seed when nothing usable is persisted.
func NewStore(port persistence.Port, seed []Photo, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	st := &Store{
		port:   port,
		logger: logger,
	}
	st.state = st.restore(seed)
	return st
}

func (st *Store) restore(seed []Photo) ApplicationState {
	data, err := st.port.Load()
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			st.logger.Warn("state load failed, using defaults", "error", err)
		}
		return Default(seed)
	}
	s, err := Decode(data)
	if err != nil {
		st.logger.Warn("persisted state malformed, using defaults", "error", err)
		return Default(seed)
	}
	return s
}

// Snapshot returns a read-only copy of the current state.
func (st *Store) Snapshot() ApplicationState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state.Clone()
}

// apply commits a transition result and persists it. Called with the
// next state already validated by the transition function.
func (st *Store) apply(next ApplicationState) ApplicationState {
	st.state = next
	st.persist()
	return next.Clone()
}

func (st *Store) persist() {
	data, err := Encode(st.state)
	if err != nil {
		st.logger.Error("state encode failed, skipping save", "error", err)
		return
	}
	if err := st.port.Save(data); err != nil {
		st.logger.Warn("state save failed", "error", err)
	}
}

// Replace merges an externally persisted payload by full replacement.
// Field-by-field merging is deliberately not attempted; the notification
// is best-effort and the payload wins wholesale or not at all.
func (st *Store) Replace(data []byte) {
	s, err := Decode(data)
	if err != nil {
		st.logger.Warn("external state notification malformed, ignored", "error", err)
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = s
}

// NavigateTo switches the active screen. Unknown views are logged no-ops.
func (st *Store) NavigateTo(v View) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := NavigateTo(st.state, v)
	if err != nil {
		st.logger.Warn("navigation rejected", "error", err)
		return st.state.Clone()
	}
	return st.apply(next)
}

// GoBack returns to the previous screen.
func (st *Store) GoBack() ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(GoBack(st.state))
}

// LikePhoto likes a photo by id.
func (st *Store) LikePhoto(id string) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(LikePhoto(st.state, id))
}

// ToggleFavorite flips a photo's favorite flag. Unknown ids are logged
// no-ops.
func (st *Store) ToggleFavorite(id string) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := ToggleFavorite(st.state, id)
	if err != nil {
		st.logger.Warn("favorite toggle rejected", "error", err)
		return st.state.Clone()
	}
	return st.apply(next)
}

// ChangePhoto cycles the gallery index.
func (st *Store) ChangePhoto(d Direction) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := ChangePhoto(st.state, d)
	if err != nil {
		st.logger.Warn("photo change rejected", "error", err)
		return st.state.Clone()
	}
	return st.apply(next)
}

// AddPhoto appends a new photo. Validation failures are logged no-ops.
func (st *Store) AddPhoto(url, caption string) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := AddPhoto(st.state, url, caption)
	if err != nil {
		st.logger.Warn("photo rejected", "error", err)
		return st.state.Clone()
	}
	return st.apply(next)
}

// IncreaseNaughtyLevel raises the gauge.
func (st *Store) IncreaseNaughtyLevel(amount int) ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(IncreaseNaughtyLevel(st.state, amount))
}

// ResetNaughtyLevel zeroes the gauge.
func (st *Store) ResetNaughtyLevel() ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(ResetNaughtyLevel(st.state))
}

// HandleHeartClick counts a heart click.
func (st *Store) HandleHeartClick() ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(HandleHeartClick(st.state))
}

// HideConfetti clears the confetti flag.
func (st *Store) HideConfetti() ApplicationState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.apply(HideConfetti(st.state))
}

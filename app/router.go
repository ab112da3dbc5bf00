package app

import (
	"sync"
	"time"

	"github.com/lixenwraith/valentine/gesture"
	"github.com/lixenwraith/valentine/input"
	"github.com/lixenwraith/valentine/state"
)

// Router interprets Intents and executes store transitions.
// It owns the gesture recognizer: pointer intents feed it positions and
// its directional callbacks dispatch back into the store.
type Router struct {
	ctx        *Context
	recognizer *gesture.Recognizer
	confetti   ConfettiTimer

	// mu guards prev: the auto-hide callback observes its own
	// transition from the timer goroutine
	mu sync.Mutex

	// prev is the last observed snapshot, kept for confetti edge
	// detection across transitions
	prev state.ApplicationState
}

// NewRouter creates a router with the swipe handlers wired.
func NewRouter(ctx *Context) *Router {
	r := &Router{
		ctx:  ctx,
		prev: ctx.Store.Snapshot(),
	}
	r.recognizer = gesture.NewRecognizer(ctx.SwipeThreshold, gesture.Handlers{
		OnLeft:  r.swipeLeft,
		OnRight: r.swipeRight,
		OnUp:    r.swipeUp,
		OnDown:  r.swipeDown,
		OnSwipe: func(s gesture.Swipe) {
			ctx.Logger.Debug("swipe",
				"direction", s.Direction.String(),
				"duration", s.Duration,
				"velocity", s.Velocity,
			)
		},
	})
	return r
}

// Handle processes an Intent and returns false if the app should exit.
func (r *Router) Handle(intent *input.Intent) bool {
	if intent == nil {
		return true
	}

	switch intent.Type {
	// System
	case input.IntentQuit:
		return false
	case input.IntentResize:
		return true

	// View switching. Any navigation cancels the pending auto-hide,
	// including a navigation that lands on the same view.
	case input.IntentNavigate:
		r.confetti.Cancel()
		r.observe(r.ctx.Store.NavigateTo(intent.View))
	case input.IntentBack:
		r.confetti.Cancel()
		r.observe(r.ctx.Store.GoBack())

	// Gallery
	case input.IntentNextPhoto:
		r.observe(r.ctx.Store.ChangePhoto(state.Next))
	case input.IntentPrevPhoto:
		r.observe(r.ctx.Store.ChangePhoto(state.Prev))
	case input.IntentLikePhoto:
		r.likeCurrent()
	case input.IntentToggleFavorite:
		r.favoriteCurrent()

	// Naughty meter
	case input.IntentHeartClick:
		r.ctx.Sounds.Click()
		r.observe(r.ctx.Store.HandleHeartClick())
	case input.IntentRaiseNaughty:
		r.observe(r.ctx.Store.IncreaseNaughtyLevel(state.DefaultNaughtyStep))
	case input.IntentResetNaughty:
		r.observe(r.ctx.Store.ResetNaughtyLevel())

	// Audio
	case input.IntentToggleMute:
		r.ctx.Sounds.ToggleMute()

	// Pointer gesture tracking
	case input.IntentPointerDown:
		if err := r.recognizer.Begin(gesture.FromMouse(intent.X, intent.Y), time.Now()); err != nil {
			r.ctx.Logger.Error("gesture begin failed", "error", err)
		}
	case input.IntentPointerMove:
		if err := r.recognizer.Track(gesture.FromMouse(intent.X, intent.Y)); err != nil {
			r.ctx.Logger.Error("gesture track failed", "error", err)
		}
	case input.IntentPointerUp:
		if _, err := r.recognizer.Finish(gesture.FromMouse(intent.X, intent.Y), time.Now()); err != nil {
			r.ctx.Logger.Error("gesture finish failed", "error", err)
		}
	}
	return true
}

// Close cancels the pending confetti auto-hide.
func (r *Router) Close() {
	r.confetti.Cancel()
}

func (r *Router) likeCurrent() {
	snap := r.ctx.Store.Snapshot()
	if len(snap.Photos) == 0 {
		return
	}
	r.ctx.Sounds.Click()
	r.observe(r.ctx.Store.LikePhoto(snap.Photos[snap.CurrentPhotoIndex].ID))
}

func (r *Router) favoriteCurrent() {
	snap := r.ctx.Store.Snapshot()
	if len(snap.Photos) == 0 {
		return
	}
	r.observe(r.ctx.Store.ToggleFavorite(snap.Photos[snap.CurrentPhotoIndex].ID))
}

// Swipe semantics: in the gallery, horizontal swipes page through
// photos; on the naughty screen an upward swipe raises the gauge; a
// downward swipe always navigates back.

func (r *Router) swipeLeft() {
	if r.ctx.Store.Snapshot().CurrentView == state.ViewGallery {
		r.observe(r.ctx.Store.ChangePhoto(state.Next))
	}
}

func (r *Router) swipeRight() {
	if r.ctx.Store.Snapshot().CurrentView == state.ViewGallery {
		r.observe(r.ctx.Store.ChangePhoto(state.Prev))
	}
}

func (r *Router) swipeUp() {
	if r.ctx.Store.Snapshot().CurrentView == state.ViewNaughty {
		r.observe(r.ctx.Store.IncreaseNaughtyLevel(state.DefaultNaughtyStep))
	}
}

func (r *Router) swipeDown() {
	r.confetti.Cancel()
	r.observe(r.ctx.Store.GoBack())
}

// observe tracks snapshot edges after every transition: a rising
// confetti flag arms the auto-hide and plays the chime; a falling flag
// or a view change cancels the pending hide so a torn-down view is
// never mutated from a stale timer. The auto-hide callback feeds its
// own transition back through here, so prev always reflects the last
// state anyone committed and the next rising edge re-arms cleanly.
func (r *Router) observe(next state.ApplicationState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if next.ShowConfetti && !r.prev.ShowConfetti {
		r.ctx.Sounds.Chime()
		r.confetti.Arm(r.ctx.ConfettiDelay, func() {
			r.observe(r.ctx.Store.HideConfetti())
		})
	}
	if !next.ShowConfetti && r.prev.ShowConfetti {
		r.confetti.Cancel()
	}
	if next.CurrentView != r.prev.CurrentView {
		r.confetti.Cancel()
	}
	r.prev = next
}

package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Direction selects gallery traversal order.
type Direction uint8

const (
	Next Direction = iota + 1
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "unknown"
	}
}

// DefaultCaption is applied when addPhoto receives an empty caption.
const DefaultCaption = "our moment"

// Every transition below is a pure function from one valid state to
// another. Callers (the Store) never observe a partial mutation: the
// input value is cloned before any field is touched.

// NavigateTo switches the active screen. An unknown view is rejected
// and the state returned unchanged.
func NavigateTo(s ApplicationState, v View) (ApplicationState, error) {
	if !v.Valid() {
		return s, fmt.Errorf("navigate: unknown view %d", v)
	}
	out := s.Clone()
	out.CurrentView = v
	return out, nil
}

// GoBack returns to the previous screen. There is no history stack:
// the naughty screen backs into the gallery, everything else backs home.
func GoBack(s ApplicationState) ApplicationState {
	out := s.Clone()
	if s.CurrentView == ViewNaughty {
		out.CurrentView = ViewGallery
	} else {
		out.CurrentView = ViewHome
	}
	return out
}

// LikePhoto bumps the like count of the photo with the given id and
// raises the gauge and click counters. The counters move even when the
// id matches nothing; only the photo-local mutation is skipped. That
// asymmetry is intentional and pinned by tests.
func LikePhoto(s ApplicationState, id string) ApplicationState {
	out := s.Clone()
	for i := range out.Photos {
		if out.Photos[i].ID == id {
			out.Photos[i].Likes++
			break
		}
	}
	out.NaughtyLevel = clampNaughty(out.NaughtyLevel + likeStep)
	out.HeartClicks++
	return out
}

// ToggleFavorite flips the favorite flag on exactly one photo.
func ToggleFavorite(s ApplicationState, id string) (ApplicationState, error) {
	for i := range s.Photos {
		if s.Photos[i].ID == id {
			out := s.Clone()
			out.Photos[i].IsFavorite = !out.Photos[i].IsFavorite
			return out, nil
		}
	}
	return s, fmt.Errorf("favorite: no photo with id %q", id)
}

// ChangePhoto advances or retreats the gallery index with wraparound.
// An empty gallery short-circuits to a no-op.
func ChangePhoto(s ApplicationState, d Direction) (ApplicationState, error) {
	n := len(s.Photos)
	if n == 0 {
		return s, nil
	}
	out := s.Clone()
	switch d {
	case Next:
		out.CurrentPhotoIndex = (out.CurrentPhotoIndex + 1) % n
	case Prev:
		out.CurrentPhotoIndex = (out.CurrentPhotoIndex - 1 + n) % n
	default:
		return s, fmt.Errorf("change photo: unknown direction %d", d)
	}
	return out, nil
}

// AddPhoto appends a new photo with a generated id, zero likes and the
// favorite flag cleared. The caption is trimmed and capped; an empty
// caption gets DefaultCaption. An empty url rejects the whole operation.
func AddPhoto(s ApplicationState, url, caption string) (ApplicationState, error) {
	if strings.TrimSpace(url) == "" {
		return s, fmt.Errorf("add photo: empty url")
	}
	caption = strings.TrimSpace(caption)
	if caption == "" {
		caption = DefaultCaption
	}
	if runes := []rune(caption); len(runes) > MaxCaptionLen {
		caption = string(runes[:MaxCaptionLen])
	}
	out := s.Clone()
	out.Photos = append(out.Photos, Photo{
		ID:      uuid.NewString(),
		URL:     url,
		Caption: caption,
	})
	return out, nil
}

// IncreaseNaughtyLevel raises the gauge by amount, clamped to
// [0, MaxNaughtyLevel]. The confetti flag trips only on the upward
// crossing of the halfway edge, not while sitting above it.
func IncreaseNaughtyLevel(s ApplicationState, amount int) ApplicationState {
	out := s.Clone()
	before := out.NaughtyLevel
	out.NaughtyLevel = clampNaughty(before + amount)
	if before < confettiEdge && out.NaughtyLevel >= confettiEdge {
		out.ShowConfetti = true
	}
	return out
}

// ResetNaughtyLevel zeroes the gauge and clears the confetti flag.
func ResetNaughtyLevel(s ApplicationState) ApplicationState {
	out := s.Clone()
	out.NaughtyLevel = 0
	out.ShowConfetti = false
	return out
}

// HandleHeartClick counts a heart click and nudges the gauge. The
// confetti flag reflects whether the new click count is an exact
// multiple of the interval.
func HandleHeartClick(s ApplicationState) ApplicationState {
	out := s.Clone()
	out.HeartClicks++
	out.NaughtyLevel = clampNaughty(out.NaughtyLevel + heartClickStep)
	out.ShowConfetti = out.HeartClicks%confettiClickInterval == 0
	return out
}

// HideConfetti clears the confetti flag.
func HideConfetti(s ApplicationState) ApplicationState {
	out := s.Clone()
	out.ShowConfetti = false
	return out
}

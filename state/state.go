package state

// View identifies the active screen.
type View uint8

const (
	ViewHome View = iota
	ViewGallery
	ViewNaughty
)

// Valid reports whether v names a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewGallery, ViewNaughty:
		return true
	default:
		return false
	}
}

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewGallery:
		return "gallery"
	case ViewNaughty:
		return "naughty"
	default:
		return "unknown"
	}
}

const (
	// MaxNaughtyLevel is the upper clamp of the naughty gauge.
	MaxNaughtyLevel = 100

	// DefaultNaughtyStep is the gauge increment used when no explicit
	// amount is given.
	DefaultNaughtyStep = 10

	// MaxCaptionLen is the rune cap applied to photo captions after
	// whitespace trimming.
	MaxCaptionLen = 200

	// confettiEdge is the gauge value whose upward crossing trips the
	// confetti flag. Edge-triggered: sitting above the value does not.
	confettiEdge = 50

	// heartClickStep is the gauge increment per heart click.
	heartClickStep = 3

	// likeStep is the gauge increment per photo like.
	likeStep = 5

	// confettiClickInterval is the heart-click multiple that trips the
	// confetti flag.
	confettiClickInterval = 10
)

// Photo is one gallery entry. The URL is a reference only; the image
// resource itself is owned externally.
type Photo struct {
	ID         string
	URL        string
	Caption    string
	Likes      int
	IsFavorite bool
}

// ApplicationState is the single persisted record driving every screen.
// It is only ever mutated through the transition functions in this
// package; observers receive copies, never aliases.
type ApplicationState struct {
	CurrentView       View
	Photos            []Photo
	NaughtyLevel      int
	HeartClicks       int
	ShowConfetti      bool
	CurrentPhotoIndex int
}

// Clone returns a deep copy. The Photos slice is never shared between
// the copy and the original.
func (s ApplicationState) Clone() ApplicationState {
	out := s
	if s.Photos != nil {
		out.Photos = make([]Photo, len(s.Photos))
		copy(out.Photos, s.Photos)
	}
	return out
}

// Default builds the initial state from a seed photo list.
func Default(seed []Photo) ApplicationState {
	photos := make([]Photo, len(seed))
	copy(photos, seed)
	return ApplicationState{
		CurrentView: ViewHome,
		Photos:      photos,
	}
}

// clampNaughty keeps the gauge inside [0, MaxNaughtyLevel].
func clampNaughty(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxNaughtyLevel {
		return MaxNaughtyLevel
	}
	return level
}

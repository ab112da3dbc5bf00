// Package content holds the fixed seed data shown before the user adds
// anything of their own.
package content

import "github.com/lixenwraith/valentine/state"

// SeedPhotos returns the gallery's initial photo list. Order is display
// order. URLs are references only; the images live wherever the gift's
// assets were unpacked.
func SeedPhotos() []state.Photo {
	return []state.Photo{
		{
			ID:      "1",
			URL:     "photos/first-date.png",
			Caption: "the night it all started",
		},
		{
			ID:      "2",
			URL:     "photos/beach-sunset.png",
			Caption: "you, the sea, and that ridiculous hat",
		},
		{
			ID:      "3",
			URL:     "photos/kitchen-disaster.png",
			Caption: "the pancake incident we agreed never to mention",
		},
		{
			ID:      "4",
			URL:     "photos/road-trip.png",
			Caption: "400 km of your questionable playlist",
		},
		{
			ID:      "5",
			URL:     "photos/lazy-sunday.png",
			Caption: "doing absolutely nothing, perfectly",
		},
	}
}

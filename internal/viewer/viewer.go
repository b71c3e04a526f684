package viewer

import "github.com/RacoonMediaServer/rms-gallery/internal/model"

const closed = -1

// Step moves from current by delta with wraparound. It reports false when there is nothing to move over.
func Step(current, delta, n int) (int, bool) {
	if n <= 0 || current < 0 || current >= n {
		return closed, false
	}
	next := (current + delta%n + n) % n
	return next, true
}

// Viewer is a lightbox over a built gallery sequence
type Viewer struct {
	items   []model.Media
	current int
}

// New creates closed viewer over items. Items must not be reordered afterwards.
func New(items []model.Media) *Viewer {
	return &Viewer{items: items, current: closed}
}

// Open shows item at index. Out of range index leaves viewer untouched.
func (v *Viewer) Open(index int) (model.Media, bool) {
	if index < 0 || index >= len(v.items) {
		return model.Media{}, false
	}
	v.current = index
	return v.items[index], true
}

// Close hides the viewer
func (v *Viewer) Close() {
	v.current = closed
}

// Next moves by delta (negative for previous). No-op when viewer is closed.
func (v *Viewer) Next(delta int) (model.Media, bool) {
	next, ok := Step(v.current, delta, len(v.items))
	if !ok {
		return model.Media{}, false
	}
	return v.Open(next)
}

// Current returns index of the shown item or -1
func (v *Viewer) Current() int {
	return v.current
}

func (v *Viewer) IsOpen() bool {
	return v.current != closed
}

package render

// ImageState is the load state of one image message
type ImageState int

const (
	ImageLoading ImageState = iota
	ImageLoaded
	ImageFailed
)

func (s ImageState) String() string {
	switch s {
	case ImageLoaded:
		return "loaded"
	case ImageFailed:
		return "failed"
	}
	return "loading"
}

// Terminal reports whether no further transition is possible
func (s ImageState) Terminal() bool {
	return s == ImageLoaded || s == ImageFailed
}

// Transition applies a load result. Loaded and Failed never change again,
// so a failed image is not retried.
func (s ImageState) Transition(ok bool) ImageState {
	if s.Terminal() {
		return s
	}
	if ok {
		return ImageLoaded
	}
	return ImageFailed
}

// ImageTracker holds the image state per message id
type ImageTracker struct {
	states map[int64]ImageState
}

// NewImageTracker creates an empty tracker
func NewImageTracker() *ImageTracker {
	return &ImageTracker{states: make(map[int64]ImageState)}
}

// Track registers a message as loading. It returns false when the id is
// already known, so callers probe each image once.
func (t *ImageTracker) Track(id int64) bool {
	if _, ok := t.states[id]; ok {
		return false
	}
	t.states[id] = ImageLoading
	return true
}

// Resolve records a probe result for id
func (t *ImageTracker) Resolve(id int64, ok bool) ImageState {
	next := t.states[id].Transition(ok)
	t.states[id] = next
	return next
}

// State returns the state for id; unknown ids are still loading
func (t *ImageTracker) State(id int64) ImageState {
	return t.states[id]
}

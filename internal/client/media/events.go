package media

// Event represents the outcome of a media side effect
type Event interface {
	isEvent()
}

// ImageLoadedEvent is sent when an image source answered
type ImageLoadedEvent struct {
	MessageID int64
}

func (ImageLoadedEvent) isEvent() {}

// ImageFailedEvent is sent when an image source could not be loaded
type ImageFailedEvent struct {
	MessageID int64
	Err       error
}

func (ImageFailedEvent) isEvent() {}

// OpenFailedEvent is sent when the external viewer could not be started
type OpenFailedEvent struct {
	URL string
	Err error
}

func (OpenFailedEvent) isEvent() {}

// OpenedEvent is sent when the external viewer was started
type OpenedEvent struct {
	URL string
}

func (OpenedEvent) isEvent() {}

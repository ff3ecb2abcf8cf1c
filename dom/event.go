package dom

// EventKind names a synthesized UI event.
type EventKind string

const (
	Click     EventKind = "click"
	MouseDown EventKind = "mousedown"
	MouseUp   EventKind = "mouseup"
)

// Event is a UI event; pointer events carry viewport coordinates.
type Event struct {
	Kind    EventKind
	ClientX float64
	ClientY float64
	Target  *Element
}

// Listener reacts to an event reaching the element it was registered on.
type Listener func(Event)

// Rect is a layout box in viewport coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

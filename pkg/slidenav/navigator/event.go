package navigator

// Event identifies a navigator lifecycle event.
type Event int

const (
	EventView      Event = iota // A navigation landed on a target view
	EventImmediate              // Persisted records were restored on Start
	EventTo                     // Navigation from the current view to a new one
	EventForward                // History moved forward
	EventBack                   // History moved back
)

func (e Event) String() string {
	switch e {
	case EventView:
		return "view"
	case EventImmediate:
		return "immediate"
	case EventTo:
		return "to"
	case EventForward:
		return "forward"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// Info describes the navigation that produced a view or to event.
type Info struct {
	Hash      string
	Cache     bool  // true when the target is re-entered from history
	Timestamp int64 // record timestamp in unix milliseconds
}

// ViewInfo is the record kept for every visited hash.
type ViewInfo struct {
	View      string
	Args      []any
	Timestamp int64
}

// ViewFunc handles the view event.
type ViewFunc func(target string, args []any, info Info)

// ImmediateFunc handles the immediate event. records maps hash to record.
type ImmediateFunc func(hash string, records map[string]ViewInfo)

// ToFunc handles the to event.
type ToFunc func(current, target string, info Info)

// TransitionFunc handles the forward and back events.
type TransitionFunc func(current, target string)

package core

// Signal enumerates the lifecycle and input notifications delivered to a
// widget. The payload accompanying HandleSignal depends on the kind:
// SignalControl carries a Key, SignalGetEditable a *bool, SignalGetType a
// *string, SignalGetStyle a *StyleQuery. The remaining kinds carry no
// payload.
type Signal int

const (
	SignalGetType Signal = iota
	SignalGetStyle
	SignalCleanup
	SignalFocus
	SignalDefocus
	SignalLeave
	SignalReleased
	SignalPressed
	SignalCoordChanged
	SignalStyleChanged
	SignalControl
	SignalGetEditable
	SignalScrollBegin
)

var signalNames = map[Signal]string{
	SignalGetType:      "get-type",
	SignalGetStyle:     "get-style",
	SignalCleanup:      "cleanup",
	SignalFocus:        "focus",
	SignalDefocus:      "defocus",
	SignalLeave:        "leave",
	SignalReleased:     "released",
	SignalPressed:      "pressed",
	SignalCoordChanged: "coord-changed",
	SignalStyleChanged: "style-changed",
	SignalControl:      "control",
	SignalGetEditable:  "get-editable",
	SignalScrollBegin:  "scroll-begin",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

// Result reports the receiver's fate after a dispatch step. ResultInvalid
// means the receiver was destroyed while handling the signal (for example a
// value-changed listener deleted the widget); the caller must not touch it
// again.
type Result int

const (
	ResultOK Result = iota
	ResultInvalid
)

// Key is a control key delivered with SignalControl.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
)

package core

// DeviceKind classifies input devices the way signal handlers need to
// distinguish them: pointers and buttons report screen points, keypads send
// control keys, encoders toggle a focus group's edit mode.
type DeviceKind int

const (
	DevicePointer DeviceKind = iota
	DeviceButton
	DeviceKeypad
	DeviceEncoder
)

func (k DeviceKind) String() string {
	switch k {
	case DevicePointer:
		return "pointer"
	case DeviceButton:
		return "button"
	case DeviceKeypad:
		return "keypad"
	case DeviceEncoder:
		return "encoder"
	}
	return "unknown"
}

// Device is the input device that produced the signal currently being
// dispatched.
type Device interface {
	Kind() DeviceKind
	// Point returns the device's current position. Only meaningful for
	// pointer and button devices.
	Point() Point
	// ScrollTarget returns the object a scroll gesture is acting on, or nil
	// when no scroll is in progress. A release while this is non-nil is a
	// drag, not a tap.
	ScrollTarget() *Object
}

// Group is the focus-group collaborator. Encoder devices open a widget when
// the group enters edit mode and close it when the group leaves it.
type Group interface {
	Editing() bool
	SetEditing(editing bool)
}

package launchpad

import "gitlab.com/gomidi/midi/v2"

// EventKind identifies a class of inbound event
type EventKind int

const (
	PadPress EventKind = iota
	PadRelease
	ControlPadPress
	ControlPadRelease
)

func (k EventKind) String() string {
	switch k {
	case PadPress:
		return "pad_press"
	case PadRelease:
		return "pad_release"
	case ControlPadPress:
		return "control_press"
	case ControlPadRelease:
		return "control_release"
	default:
		return "unknown"
	}
}

// PadFunc is called with the pad that was pressed or released
type PadFunc func(pad Pad)

// ControlPadFunc is called with the column (1-8) of the control pad that was
// pressed or released
type ControlPadFunc func(column int)

// Observer is notified of controller traffic. Implementations must be cheap;
// they run inline with sends and message handling.
type Observer interface {
	MessageSent(id string, msg midi.Message)
	MessageDispatched(id string, kind EventKind)
	MessageDropped(id string, msg midi.Message)
}

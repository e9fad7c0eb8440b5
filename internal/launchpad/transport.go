package launchpad

import "gitlab.com/gomidi/midi/v2"

// Source delivers inbound messages from the device.
// Listen registers handler; the transport calls it once per received message.
type Source interface {
	Listen(handler func(msg midi.Message)) error
}

// Sink transmits raw messages to the device
type Sink interface {
	Send(msg midi.Message) error
}

// SendFunc adapts a send function, such as the one returned by midi.SendTo, to a Sink
type SendFunc func(msg midi.Message) error

// Send calls f(msg)
func (f SendFunc) Send(msg midi.Message) error {
	return f(msg)
}

// Input is a named inbound endpoint, as enumerated by the MIDI driver
type Input interface {
	Source
	Name() string
}

// Output is a named outbound endpoint, as enumerated by the MIDI driver
type Output interface {
	Sink
	Name() string
}

package midi

import (
	"fmt"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// InPort adapts a driver input port to launchpad.Input
type InPort struct {
	port drivers.In

	mu   sync.Mutex
	stop func()
}

// NewInPort wraps a driver input port
func NewInPort(port drivers.In) *InPort {
	return &InPort{port: port}
}

// Name returns the port name reported by the driver
func (p *InPort) Name() string {
	return p.port.String()
}

// Listen starts delivering messages from the port to handler.
// A port can only have one handler; listening again replaces it.
func (p *InPort) Listen(handler func(msg midi.Message)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		p.stop()
		p.stop = nil
	}

	stop, err := midi.ListenTo(p.port, func(msg midi.Message, timestampms int32) {
		handler(msg)
	})
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", p.port.String(), err)
	}
	p.stop = stop
	return nil
}

// Close stops listening. The port itself is closed with the driver.
func (p *InPort) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
}

// OutPort adapts a driver output port to launchpad.Output
type OutPort struct {
	port drivers.Out

	mu   sync.Mutex
	send func(midi.Message) error
}

// NewOutPort wraps a driver output port
func NewOutPort(port drivers.Out) *OutPort {
	return &OutPort{port: port}
}

// Name returns the port name reported by the driver
func (p *OutPort) Name() string {
	return p.port.String()
}

// Send writes msg to the port, opening it on first use
func (p *OutPort) Send(msg midi.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.send == nil {
		send, err := midi.SendTo(p.port)
		if err != nil {
			return fmt.Errorf("failed to create sender: %w", err)
		}
		p.send = send
	}
	return p.send(msg)
}

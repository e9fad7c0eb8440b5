package midi

import (
	"log/slog"
	"sync"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// PortLister enumerates the ports of a MIDI driver
type PortLister interface {
	InPorts() []drivers.In
	OutPorts() []drivers.Out
}

type defaultDriver struct{}

func (defaultDriver) InPorts() []drivers.In { return midi.GetInPorts() }
func (defaultDriver) OutPorts() []drivers.Out { return midi.GetOutPorts() }

// Manager handles MIDI port discovery for the registered driver
type Manager struct {
	mu     sync.RWMutex
	ports  PortLister
	logger *slog.Logger
}

// NewManager creates a manager backed by the registered MIDI driver
func NewManager(logger *slog.Logger) *Manager {
	return NewManagerWithPorts(defaultDriver{}, logger)
}

// NewManagerWithPorts creates a manager that enumerates ports from lister
func NewManagerWithPorts(lister PortLister, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		ports:  lister,
		logger: logger.With("module", "midi"),
	}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := m.ports.InPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := m.ports.OutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// Inputs returns an adapter for every input port, in driver order
func (m *Manager) Inputs() []launchpad.Input {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := m.ports.InPorts()
	inputs := make([]launchpad.Input, 0, len(ins))
	for _, in := range ins {
		inputs = append(inputs, NewInPort(in))
	}
	return inputs
}

// Outputs returns an adapter for every output port, in driver order
func (m *Manager) Outputs() []launchpad.Output {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := m.ports.OutPorts()
	outputs := make([]launchpad.Output, 0, len(outs))
	for _, out := range outs {
		outputs = append(outputs, NewOutPort(out))
	}
	return outputs
}

// Device is a discovered controller together with the ports it uses
type Device struct {
	*launchpad.Controller

	In  *InPort
	Out *OutPort
}

// Close stops listening on the device's input port
func (d *Device) Close() {
	d.In.Close()
}

// Discover finds the device whose port names contain name and creates a
// controller for it. It returns launchpad.ErrNotFound if there is none.
func (m *Manager) Discover(name string, opts ...launchpad.Option) (*Device, error) {
	in, out, ok := launchpad.Match(m.Inputs(), m.Outputs(), name)
	if !ok {
		m.logger.Debug("no device found", "name", name, "inputs", m.ListInPorts(), "outputs", m.ListOutPorts())
		return nil, launchpad.ErrNotFound
	}

	m.logger.Info("device found", "input", in.Name(), "output", out.Name())

	ctrl, err := launchpad.New(in, out, opts...)
	if err != nil {
		return nil, err
	}
	return &Device{Controller: ctrl, In: in.(*InPort), Out: out.(*OutPort)}, nil
}

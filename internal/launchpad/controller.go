package launchpad

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
)

// Status bytes, channel 1
const (
	statusNoteOn        uint8 = 0x90
	statusControlChange uint8 = 0xB0
)

const (
	// controlBase + column is the CC number of a control pad (104-111)
	controlBase = 0x67

	valuePress   uint8 = 0x7F
	valueRelease uint8 = 0x00
)

// Device-wide commands are sent as CC 0 with these values
const (
	ccReset       uint8 = 0x00
	resetAll      uint8 = 0x00
	modeXY        uint8 = 0x01
	modeDrumRack  uint8 = 0x02
	bufferConfig  uint8 = 0x20
	bufferFlashOn uint8 = 0x08
)

// Controller encodes LED commands for a Launchpad and decodes its button
// events. It does not track which LEDs are lit; the device is the source of
// truth.
type Controller struct {
	id       string
	source   Source
	sink     Sink
	logger   *slog.Logger
	observer Observer

	mu               sync.RWMutex
	padListeners     map[EventKind][]PadFunc
	controlListeners map[EventKind][]ControlPadFunc
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver sets an observer notified of every sent, dispatched and dropped message
func WithObserver(observer Observer) Option {
	return func(c *Controller) {
		c.observer = observer
	}
}

// WithID overrides the generated controller ID
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// New creates a controller and hands HandleMessage to source as its message
// handler. An error from source.Listen is returned as is.
func New(source Source, sink Sink, opts ...Option) (*Controller, error) {
	c := &Controller{
		id:               uuid.New().String(),
		source:           source,
		sink:             sink,
		logger:           slog.Default(),
		padListeners:     make(map[EventKind][]PadFunc),
		controlListeners: make(map[EventKind][]ControlPadFunc),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("module", "launchpad", "id", c.id)

	if err := source.Listen(c.HandleMessage); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the controller ID used in logs and metrics
func (c *Controller) ID() string {
	return c.id
}

// -- Sending --

func (c *Controller) send(msg midi.Message) error {
	if err := c.sink.Send(msg); err != nil {
		c.logger.Debug("send failed", "msg", fmt.Sprintf("% X", []byte(msg)), "error", err)
		return err
	}
	if c.observer != nil {
		c.observer.MessageSent(c.id, msg)
	}
	return nil
}

// LedOn lights a pad
func (c *Controller) LedOn(pad Pad, color Color) error {
	return c.send(midi.NoteOn(0, pad.note(), color.velocity()))
}

// LedOff turns a pad off
func (c *Controller) LedOff(pad Pad) error {
	return c.send(midi.NoteOff(0, pad.note()))
}

// ControlLedOn lights a control pad. Column is clamped to 1-8.
func (c *Controller) ControlLedOn(column int, color Color) error {
	return c.send(midi.ControlChange(0, controlNumber(column), color.velocity()))
}

// ControlLedOff turns a control pad off. Column is clamped to 1-8.
func (c *Controller) ControlLedOff(column int) error {
	return c.send(midi.ControlChange(0, controlNumber(column), 0))
}

// Clear turns off every LED and resets the device's mapping mode and buffer settings
func (c *Controller) Clear() error {
	return c.send(midi.ControlChange(0, ccReset, resetAll))
}

// SetXYMappingMode selects X-Y pad layout (the default)
func (c *Controller) SetXYMappingMode() error {
	return c.send(midi.ControlChange(0, ccReset, modeXY))
}

// SetDrumMappingMode selects drum rack pad layout
func (c *Controller) SetDrumMappingMode() error {
	return c.send(midi.ControlChange(0, ccReset, modeDrumRack))
}

// EnableFlashing starts the device's flash timer so flashing colors blink
func (c *Controller) EnableFlashing() error {
	return c.send(midi.ControlChange(0, ccReset, bufferConfig|bufferFlashOn))
}

// DisableFlashing stops the flash timer
func (c *Controller) DisableFlashing() error {
	return c.send(midi.ControlChange(0, ccReset, bufferConfig))
}

func controlNumber(column int) uint8 {
	return uint8(controlBase + clamp(column, 1, MaxControlColumn))
}

// -- Receiving --

// HandleMessage decodes one inbound message and calls the matching listeners
// in registration order. Messages that are not pad or control pad presses or
// releases are logged and dropped.
func (c *Controller) HandleMessage(msg midi.Message) {
	if len(msg) != 3 {
		c.drop(msg)
		return
	}

	status, data, value := msg[0], msg[1], msg[2]
	switch {
	case status == statusControlChange && value == valuePress:
		c.dispatchControl(ControlPadPress, int(data)-controlBase)
	case status == statusControlChange && value == valueRelease:
		c.dispatchControl(ControlPadRelease, int(data)-controlBase)
	case status == statusNoteOn && value == valuePress:
		c.dispatchPad(PadPress, padFromNote(data))
	case status == statusNoteOn && value == valueRelease:
		c.dispatchPad(PadRelease, padFromNote(data))
	default:
		c.drop(msg)
	}
}

func (c *Controller) drop(msg midi.Message) {
	c.logger.Debug("unrecognized message", "msg", fmt.Sprintf("% X", []byte(msg)))
	if c.observer != nil {
		c.observer.MessageDropped(c.id, msg)
	}
}

func (c *Controller) dispatchPad(kind EventKind, pad Pad) {
	c.mu.RLock()
	listeners := c.padListeners[kind]
	c.mu.RUnlock()

	if c.observer != nil {
		c.observer.MessageDispatched(c.id, kind)
	}
	for _, fn := range listeners {
		fn(pad)
	}
}

func (c *Controller) dispatchControl(kind EventKind, column int) {
	c.mu.RLock()
	listeners := c.controlListeners[kind]
	c.mu.RUnlock()

	if c.observer != nil {
		c.observer.MessageDispatched(c.id, kind)
	}
	for _, fn := range listeners {
		fn(column)
	}
}

// OnPadPress registers fn to be called when a pad is pressed
func (c *Controller) OnPadPress(fn PadFunc) {
	c.addPadListener(PadPress, fn)
}

// OnPadRelease registers fn to be called when a pad is released
func (c *Controller) OnPadRelease(fn PadFunc) {
	c.addPadListener(PadRelease, fn)
}

// OnControlPadPress registers fn to be called when a control pad is pressed
func (c *Controller) OnControlPadPress(fn ControlPadFunc) {
	c.addControlListener(ControlPadPress, fn)
}

// OnControlPadRelease registers fn to be called when a control pad is released
func (c *Controller) OnControlPadRelease(fn ControlPadFunc) {
	c.addControlListener(ControlPadRelease, fn)
}

func (c *Controller) addPadListener(kind EventKind, fn PadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.padListeners[kind] = append(c.padListeners[kind], fn)
}

func (c *Controller) addControlListener(kind EventKind, fn ControlPadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controlListeners[kind] = append(c.controlListeners[kind], fn)
}

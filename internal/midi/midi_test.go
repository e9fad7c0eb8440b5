package midi

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

type fakePort struct {
	name string
	open bool
}

func (p *fakePort) Open() error { p.open = true; return nil }
func (p *fakePort) Close() error { p.open = false; return nil }
func (p *fakePort) IsOpen() bool { return p.open }
func (p *fakePort) Number() int { return 0 }
func (p *fakePort) String() string { return p.name }
func (p *fakePort) Underlying() interface{} { return nil }

type fakeIn struct {
	fakePort
	onMsg   func(msg []byte, milliseconds int32)
	stopped int
}

func (p *fakeIn) Listen(onMsg func(msg []byte, milliseconds int32), config drivers.ListenConfig) (func(), error) {
	p.onMsg = onMsg
	return func() { p.stopped++ }, nil
}

type fakeOut struct {
	fakePort
	sent [][]byte
	err  error
}

func (p *fakeOut) Send(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, append([]byte(nil), data...))
	return nil
}

type fakeLister struct {
	ins  []drivers.In
	outs []drivers.Out
}

func (l fakeLister) InPorts() []drivers.In { return l.ins }
func (l fakeLister) OutPorts() []drivers.Out { return l.outs }

func TestManagerListPorts(t *testing.T) {
	m := NewManagerWithPorts(fakeLister{
		ins:  []drivers.In{&fakeIn{fakePort: fakePort{name: "Launchpad S"}}},
		outs: []drivers.Out{&fakeOut{fakePort: fakePort{name: "Launchpad S"}}, &fakeOut{fakePort: fakePort{name: "Synth"}}},
	}, nil)

	if got := m.ListInPorts(); len(got) != 1 || got[0] != "Launchpad S" {
		t.Errorf("ListInPorts() = %v, want [Launchpad S]", got)
	}
	if got := m.ListOutPorts(); len(got) != 2 || got[1] != "Synth" {
		t.Errorf("ListOutPorts() = %v, want [Launchpad S Synth]", got)
	}
}

func TestManagerDiscover(t *testing.T) {
	in := &fakeIn{fakePort: fakePort{name: "Launchpad S"}}
	out := &fakeOut{fakePort: fakePort{name: "Launchpad S"}}
	m := NewManagerWithPorts(fakeLister{
		ins:  []drivers.In{&fakeIn{fakePort: fakePort{name: "Keystation"}}, in},
		outs: []drivers.Out{out},
	}, nil)

	dev, err := m.Discover("")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if dev.In.Name() != "Launchpad S" || dev.Out.Name() != "Launchpad S" {
		t.Errorf("Discover() ports = %s/%s, want Launchpad S", dev.In.Name(), dev.Out.Name())
	}
	if in.onMsg == nil {
		t.Fatal("Discover() did not listen on the input port")
	}

	var pressed launchpad.Pad
	dev.OnPadPress(func(p launchpad.Pad) { pressed = p })
	in.onMsg([]byte{0x90, 0x12, 0x7F}, 0)
	if want := launchpad.NewPad(2, 3); !pressed.Equals(want) {
		t.Errorf("pressed = %+v, want %+v", pressed, want)
	}

	if err := dev.LedOn(launchpad.NewPad(1, 1), launchpad.Amber); err != nil {
		t.Fatalf("LedOn() error = %v", err)
	}
	if len(out.sent) != 1 || !bytes.Equal(out.sent[0], []byte{0x90, 0x00, 0x3F}) {
		t.Errorf("sent %X, want [90 00 3F]", out.sent)
	}

	dev.Close()
	if in.stopped != 1 {
		t.Errorf("stop called %d times, want 1", in.stopped)
	}
	dev.Close()
	if in.stopped != 1 {
		t.Errorf("stop called %d times after second Close, want 1", in.stopped)
	}
}

func TestManagerDiscoverNotFound(t *testing.T) {
	m := NewManagerWithPorts(fakeLister{
		ins: []drivers.In{&fakeIn{fakePort: fakePort{name: "Launchpad S"}}},
	}, nil)

	if _, err := m.Discover("launchpad"); !errors.Is(err, launchpad.ErrNotFound) {
		t.Errorf("Discover() error = %v, want %v", err, launchpad.ErrNotFound)
	}
}

func TestOutPortSendError(t *testing.T) {
	sendErr := errors.New("device unplugged")
	p := NewOutPort(&fakeOut{fakePort: fakePort{name: "Launchpad S"}, err: sendErr})

	if err := p.Send([]byte{0xB0, 0x00, 0x00}); !errors.Is(err, sendErr) {
		t.Errorf("Send() error = %v, want %v", err, sendErr)
	}
}

func TestInPortListenReplacesHandler(t *testing.T) {
	in := &fakeIn{fakePort: fakePort{name: "Launchpad S"}}
	p := NewInPort(in)

	first, second := 0, 0
	if err := p.Listen(func(gomidi.Message) { first++ }); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if err := p.Listen(func(gomidi.Message) { second++ }); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if in.stopped != 1 {
		t.Errorf("stop called %d times, want 1", in.stopped)
	}

	in.onMsg([]byte{0x90, 0x00, 0x7F}, 0)
	if first != 0 || second != 1 {
		t.Errorf("handlers called %d/%d times, want 0/1", first, second)
	}
}

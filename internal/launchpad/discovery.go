package launchpad

import (
	"errors"
	"strings"
)

// DefaultName is the device name filter used when none is given
const DefaultName = "launchpad"

// ErrNotFound is returned by Discover when no input or no output matches
var ErrNotFound = errors.New("launchpad: no matching device found")

// Match returns the input and output whose names contain name, ignoring case.
// If several endpoints match, the last one listed wins. An empty name means
// DefaultName.
func Match(inputs []Input, outputs []Output, name string) (Input, Output, bool) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	var in Input
	for _, i := range inputs {
		if strings.Contains(strings.ToLower(i.Name()), name) {
			in = i
		}
	}

	var out Output
	for _, o := range outputs {
		if strings.Contains(strings.ToLower(o.Name()), name) {
			out = o
		}
	}

	if in == nil || out == nil {
		return nil, nil, false
	}
	return in, out, true
}

// Discover creates a controller for the matching input and output.
// It returns ErrNotFound if either side has no match.
func Discover(inputs []Input, outputs []Output, name string, opts ...Option) (*Controller, error) {
	in, out, ok := Match(inputs, outputs, name)
	if !ok {
		return nil, ErrNotFound
	}
	return New(in, out, opts...)
}

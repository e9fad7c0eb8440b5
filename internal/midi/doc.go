// Package midi connects launchpad controllers to real MIDI ports through
// gomidi. The rtmidi driver is registered unless built with the nortmidi tag.
package midi

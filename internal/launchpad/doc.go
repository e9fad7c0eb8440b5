// Package launchpad translates between pad/color addressing and the MIDI
// messages spoken by a Novation Launchpad (8x8 pads, a side column and a row
// of eight control pads).
//
// A Controller is built from a Source and a Sink supplied by a MIDI
// transport. LED methods encode and send a single three-byte message.
// Inbound messages are decoded by HandleMessage and passed to the listeners
// registered with OnPadPress, OnPadRelease, OnControlPadPress and
// OnControlPadRelease.
package launchpad

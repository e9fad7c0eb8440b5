package launchpad

// Grid bounds. Column 9 is the side (scene launch) column.
const (
	MinRow    = 1
	MaxRow    = 8
	MinColumn = 1
	MaxColumn = 9

	// MaxControlColumn is the number of control pads along the top edge
	MaxControlColumn = 8
)

// Pad addresses one cell of the grid
type Pad struct {
	Row    int
	Column int
}

// NewPad creates a pad, clamping row to 1-8 and column to 1-9
func NewPad(row, column int) Pad {
	return Pad{
		Row:    clamp(row, MinRow, MaxRow),
		Column: clamp(column, MinColumn, MaxColumn),
	}
}

// Equals reports whether both pads address the same cell
func (p Pad) Equals(other Pad) bool {
	return p.Row == other.Row && p.Column == other.Column
}

// note returns the note number the device uses for this pad.
// Rows are 16 notes apart: row 1 = notes 0-8, row 2 = notes 16-24, etc.
func (p Pad) note() uint8 {
	return uint8((p.Row-1)*16 + (p.Column - 1))
}

// padFromNote is the inverse of note
func padFromNote(note uint8) Pad {
	return NewPad(int(note/16)+1, int(note%16)+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

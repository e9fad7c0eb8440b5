package launchpad

// Intensity range of each LED channel
const (
	MinIntensity = 0
	MaxIntensity = 3
)

// Velocity flag bits (low nibble).
// Bit 2 = copy, bit 3 = clear. Copy+clear writes both buffers; clear alone flashes.
const (
	flagsNormal uint8 = 0x0C
	flagsFlash  uint8 = 0x08
)

// Color is a red/green LED intensity pair.
// Flashing only affects how the color is sent, so Equals ignores it.
type Color struct {
	Green    int
	Red      int
	Flashing bool
}

// Common colors
var (
	Off       = Color{}
	LowRed    = Color{Red: 1}
	Red       = Color{Red: 3}
	LowGreen  = Color{Green: 1}
	Green     = Color{Green: 3}
	LowAmber  = Color{Green: 1, Red: 1}
	Amber     = Color{Green: 3, Red: 3}
	Yellow    = Color{Green: 3, Red: 2}
	Orange    = Color{Green: 2, Red: 3}
	LowOrange = Color{Green: 1, Red: 2}
	LowYellow = Color{Green: 2, Red: 1}
)

// NewColor creates a color, clamping both channels to 0-3
func NewColor(green, red int, flashing bool) Color {
	return Color{
		Green:    clamp(green, MinIntensity, MaxIntensity),
		Red:      clamp(red, MinIntensity, MaxIntensity),
		Flashing: flashing,
	}
}

// Equals compares green and red only
func (c Color) Equals(other Color) bool {
	return c.Green == other.Green && c.Red == other.Red
}

// WithFlashing returns a copy of c with the flashing flag set to flashing
func (c Color) WithFlashing(flashing bool) Color {
	c.Flashing = flashing
	return c
}

// velocity packs the color into the device's velocity byte: bits 5-4 green,
// bits 3-2 flags, bits 1-0 red.
// Double-buffered addressing of a single buffer is not supported.
func (c Color) velocity() uint8 {
	flags := flagsNormal
	if c.Flashing {
		flags = flagsFlash
	}
	return flags | uint8(c.Green)<<4 | uint8(c.Red)
}

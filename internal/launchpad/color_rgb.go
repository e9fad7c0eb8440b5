package launchpad

// ColorFromRGB approximates a 0-127 RGB color on the red/green LEDs.
// Blue has no LED, so it is folded mostly into green and a little into red
// to keep the brightness.
func ColorFromRGB(r, g, b uint8) Color {
	effectiveR := int(r) + int(b)/4
	effectiveG := int(g) + (int(b)*3)/4

	if effectiveR > 127 {
		effectiveR = 127
	}
	if effectiveG > 127 {
		effectiveG = 127
	}

	return NewColor(intensityLevel(effectiveG), intensityLevel(effectiveR), false)
}

// intensityLevel maps a 0-127 channel value to a 0-3 LED intensity
func intensityLevel(value int) int {
	switch {
	case value < 32:
		return 0
	case value < 64:
		return 1
	case value < 96:
		return 2
	}
	return 3
}

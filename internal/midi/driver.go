//go:build !nortmidi

package midi

import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

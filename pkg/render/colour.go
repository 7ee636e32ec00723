// 11 Oct 2026

package render

import (
	"fmt"
	"image/color"
	"os"

	"golang.org/x/term"
)

// ColourMode says when to write escape sequences.
type ColourMode byte

const (
	Always ColourMode = iota
	Auto              // only if output goes to a terminal
	Never
)

// ParseColour turns "always", "auto" or "never" into a ColourMode.
func ParseColour(s string) (ColourMode, error) {
	switch s {
	case "always", "":
		return Always, nil
	case "auto":
		return Auto, nil
	case "never":
		return Never, nil
	}
	return Always, fmt.Errorf("colour \"%s\" should be always, auto or never", s)
}

// UseColour decides, for output going to fp, if we write colours.
func UseColour(mode ColourMode, fp *os.File) bool {
	switch mode {
	case Never:
		return false
	case Auto:
		return fp != nil && term.IsTerminal(int(fp.Fd()))
	}
	return true
}

// The sixteen system colours as xterm draws them.
var system16 = [16]color.RGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

// xterm256 gives the colour a terminal shows for background index c.
// 16 to 231 are a 6x6x6 cube, 232 to 255 a grey ramp.
func xterm256(c uint8) color.RGBA {
	switch {
	case c < 16:
		return system16[c]
	case c < 232:
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		i := c - 16
		return color.RGBA{levels[i/36], levels[(i/6)%6], levels[i%6], 255}
	}
	g := 8 + 10*(c-232)
	return color.RGBA{g, g, g, 255}
}

// rankColour maps a rank onto the palette the terminal would use.
// Ranks past 255 wrap round.
func rankColour(rank int) color.RGBA { return xterm256(uint8(rank % 256)) }

// inkFor picks black or white text, whichever shows up on bg.
func inkFor(bg color.RGBA) color.RGBA {
	lum := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if lum > 128*1000 {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

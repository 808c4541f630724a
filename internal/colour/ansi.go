package colour

import (
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether f is a terminal that should receive
// 24-bit colour escapes. NO_COLOR and TERM=dumb turn colours off.
func SupportsANSIColours(f *os.File) bool {
	if DisableColourOutput || f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColourPreview returns a solid block of width cells in the colour of o.
func ColourPreview(o Object, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, o.R, o.G, o.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with text overlaid in black
// or white, whichever contrasts better.
func ColourPreviewWithText(o Object, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := 255
	if Luminance(o) > 0.5 {
		fg = 0
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, o.R, o.G, o.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}

// FormatRole formats one scheme role as a line of preview output: a swatch
// labelled with the hex code, then the role. Without colour support only the
// label and hex code are printed.
func FormatRole(role Role, o Object, width int, colours bool) string {
	if !colours {
		return fmt.Sprintf("%-22s %s", role, o.Hex)
	}
	return fmt.Sprintf("%s  %s", ColourPreviewWithText(o, o.Hex, max(width, len(o.Hex)+2)), role)
}

// Luminance calculates the relative luminance of o according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
func Luminance(o Object) float64 {
	return 0.2126*linearise(o.R) + 0.7152*linearise(o.G) + 0.0722*linearise(o.B)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colours,
// from 1 (none) to 21 (black on white).
func ContrastRatio(a, b Object) float64 {
	l1, l2 := Luminance(a), Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// linearise applies the sRGB gamma expansion to an 8-bit channel.
func linearise(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

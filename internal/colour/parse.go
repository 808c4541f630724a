package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// PackARGB packs 8-bit channels into a 0xAARRGGBB value.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a 0xAARRGGBB value into its channels.
func UnpackARGB(argb uint32) (a, r, g, b uint8) {
	return uint8(argb >> 24), uint8(argb >> 16), uint8(argb >> 8), uint8(argb)
}

// ParseARGB parses a colour literal into a packed 0xAARRGGBB value.
// Supported formats: #RGB, #RRGGBB, #AARRGGBB, rgb(r,g,b) and rgba(r,g,b,a)
// where every component, alpha included, is an integer in [0,255].
// Colours without an alpha component are fully opaque.
func ParseARGB(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexARGB(s)
	case strings.HasPrefix(lower, "rgb"):
		return parseFunctionalARGB(lower)
	default:
		return 0, fmt.Errorf("%w: %q (use #RRGGBB, #AARRGGBB, rgb() or rgba())", ErrInvalidColorFormat, s)
	}
}

// parseHexARGB parses #RGB, #RRGGBB and #AARRGGBB.
func parseHexARGB(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q has %d hex digits, expected 3, 6 or 8", ErrInvalidColorFormat, s, len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColorFormat, s)
	}
	return uint32(v), nil
}

// parseFunctionalARGB parses rgb(r,g,b) and rgba(r,g,b,a).
func parseFunctionalARGB(s string) (uint32, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	fn := strings.TrimSpace(s[:open])
	if fn != "rgb" && fn != "rgba" {
		return 0, fmt.Errorf("%w: unknown colour function %q", ErrInvalidColorFormat, fn)
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, fmt.Errorf("%w: %q needs 3 or 4 components, got %d", ErrInvalidColorFormat, s, len(parts))
	}

	channels := [4]uint8{0, 0, 0, 255}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: component %d of %q is not an integer", ErrInvalidColorFormat, i+1, s)
		}
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("%w: component %d of %q out of range 0-255", ErrInvalidColorFormat, i+1, s)
		}
		channels[i] = uint8(v)
	}

	return PackARGB(channels[3], channels[0], channels[1], channels[2]), nil
}

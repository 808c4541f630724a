// Package colour provides the colour value types shared by every backend:
// normalised colour objects, role-keyed schemes and colour literal parsing.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Alpha is an opacity in [0,1] rounded to one decimal place.
// It always serialises with exactly one decimal (1.0, 0.5, 0.0).
type Alpha float64

// String returns the alpha with one decimal place.
func (a Alpha) String() string {
	return strconv.FormatFloat(float64(a), 'f', 1, 64)
}

// MarshalJSON implements json.Marshaler.
func (a Alpha) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Object is one colour expressed in every encoding templates may need.
// It is derived from an RGBA quadruple and never mutated afterwards.
type Object struct {
	R           int    `json:"r"`
	G           int    `json:"g"`
	B           int    `json:"b"`
	H           int    `json:"h"`
	S           int    `json:"s"`
	L           int    `json:"l"`
	A           Alpha  `json:"a"`
	RGB         string `json:"rgb"`
	RGBA        string `json:"rgba"`
	Hex         string `json:"hex"`
	HexUnhashed string `json:"hex_unhashed"`
	HSLA        string `json:"hsla"`
	HSLANoDecor string `json:"hsla_no_decor"`
	HSL         string `json:"hsl"`
	HSLNoDecor  string `json:"hsl_no_decor"`
}

// Normalize derives an Object from 8-bit channel values.
// Values outside [0,255] are not rejected; they pass straight through
// the formulas and the caller is responsible for validating them.
func Normalize(r, g, b, a int) Object {
	alpha := Alpha(roundHalfEven(float64(a)/255*10) / 10)
	hf, sf, lf := RGBToHSL(r, g, b)
	h := int(roundHalfEven(hf)) % 360
	s := int(roundHalfEven(sf))
	l := int(roundHalfEven(lf))

	hexUnhashed := fmt.Sprintf("%02X%02X%02X", r, g, b)

	return Object{
		R:           r,
		G:           g,
		B:           b,
		H:           h,
		S:           s,
		L:           l,
		A:           alpha,
		RGB:         fmt.Sprintf("rgb(%d,%d,%d)", r, g, b),
		RGBA:        fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, alpha),
		Hex:         "#" + hexUnhashed,
		HexUnhashed: hexUnhashed,
		HSLA:        fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)", h, s, l, alpha),
		HSLANoDecor: fmt.Sprintf("hsla(%d,%d,%d,%s)", h, s, l, alpha),
		HSL:         fmt.Sprintf("hsl(%d,%d%%,%d%%)", h, s, l),
		HSLNoDecor:  fmt.Sprintf("hsl(%d,%d,%d)", h, s, l),
	}
}

// FromColor normalises any color.Color. Alpha-premultiplied colours are
// converted to non-premultiplied channels first.
func FromColor(c color.Color) Object {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Normalize(int(n.R), int(n.G), int(n.B), int(n.A))
}

// FromARGB normalises a packed 0xAARRGGBB value.
func FromARGB(argb uint32) Object {
	a, r, g, b := UnpackARGB(argb)
	return Normalize(int(r), int(g), int(b), int(a))
}

// Color returns the object as a color.NRGBA. Channels are truncated to 8 bits.
func (o Object) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(o.R),
		G: uint8(o.G),
		B: uint8(o.B),
		A: uint8(math.Round(float64(o.A) * 255)),
	}
}

// Map returns the object keyed by its JSON field names, which is the shape
// templates address it by ({{ .primary.hex }}).
func (o Object) Map() map[string]any {
	return map[string]any{
		"r":             o.R,
		"g":             o.G,
		"b":             o.B,
		"h":             o.H,
		"s":             o.S,
		"l":             o.L,
		"a":             o.A,
		"rgb":           o.RGB,
		"rgba":          o.RGBA,
		"hex":           o.Hex,
		"hex_unhashed":  o.HexUnhashed,
		"hsla":          o.HSLA,
		"hsla_no_decor": o.HSLANoDecor,
		"hsl":           o.HSL,
		"hsl_no_decor":  o.HSLNoDecor,
	}
}

// RGBToHSL converts 8-bit RGB to hue in degrees [0,360) and saturation and
// lightness as percentages [0,100]. Results are not rounded.
func RGBToHSL(r, g, b int) (h, s, l float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	l = (maxVal + minVal) / 2

	if maxVal == minVal {
		return 0, 0, l * 100
	}

	d := maxVal - minVal
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	switch maxVal {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return h * 360, s * 100, l * 100
}

// roundHalfEven rounds to the nearest integer, ties to even.
func roundHalfEven(v float64) float64 {
	return math.RoundToEven(v)
}

package quantize

import (
	"image/color"
	"math"
)

// point3D is a colour in CIE L*a*b* space.
type point3D struct {
	L, A, B float64
}

// distanceSq returns the squared Euclidean distance, which is all the
// clustering needs for comparisons.
func (p point3D) distanceSq(other point3D) float64 {
	dl := p.L - other.L
	da := p.A - other.A
	db := p.B - other.B
	return dl*dl + da*da + db*db
}

// D65 white point.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

func toLab(c color.NRGBA) point3D {
	r := linearise(c.R)
	g := linearise(c.G)
	b := linearise(c.B)

	x := 0.41233895*r + 0.35762064*g + 0.18051042*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.01932141*r + 0.11916382*g + 0.95034478*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return point3D{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func fromLab(p point3D) color.NRGBA {
	fy := (p.L + 16) / 116
	fx := p.A/500 + fy
	fz := fy - p.B/200

	x := labInvF(fx) * whiteX
	y := labInvF(fy) * whiteY
	z := labInvF(fz) * whiteZ

	r := 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	g := -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	b := 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z

	return color.NRGBA{R: delinearise(r), G: delinearise(g), B: delinearise(b), A: 255}
}

// linearise converts an 8-bit sRGB channel to linear light in [0,100].
func linearise(c uint8) float64 {
	v := float64(c) / 255.0
	if v <= 0.040449936 {
		return v / 12.92 * 100
	}
	return math.Pow((v+0.055)/1.055, 2.4) * 100
}

// delinearise converts linear light in [0,100] back to an 8-bit channel.
func delinearise(v float64) uint8 {
	n := v / 100
	var d float64
	if n <= 0.0031308 {
		d = n * 12.92
	} else {
		d = 1.055*math.Pow(n, 1/2.4) - 0.055
	}
	return uint8(math.Max(0, math.Min(255, math.Round(d*255))))
}

func labF(t float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	if t > e {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func labInvF(ft float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	return (116*ft - 16) / kappa
}

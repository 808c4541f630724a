// Package score ranks quantized colours by how well they would work as the
// seed of a Material colour scheme: colours covering a large share of the
// image with enough chroma rank highest.
package score

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"cogentcore.org/core/colors/cam/hct"
)

const (
	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// GoogleBlue is the seed used when no colour in an image is suitable.
var GoogleBlue = color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}

// Options tunes Score.
type Options struct {
	// Desired is the maximum number of colours returned.
	Desired int

	// Fallback is returned when no colour survives filtering.
	Fallback color.NRGBA

	// Filter drops colours with too little chroma or image coverage.
	Filter bool
}

// DefaultOptions returns the options Material uses for wallpaper seeds.
func DefaultOptions() Options {
	return Options{
		Desired:  4,
		Fallback: GoogleBlue,
		Filter:   true,
	}
}

type scored struct {
	colour color.NRGBA
	hue    float64
	chroma float64
	score  float64
}

// Score returns up to opts.Desired colours from population, best first.
// Chosen colours are at least 15 degrees of hue apart. The result is never
// empty: opts.Fallback is returned when nothing qualifies.
func Score(population map[color.NRGBA]int, opts Options) []color.NRGBA {
	if opts.Desired < 1 {
		opts.Desired = 1
	}

	keys := make([]color.NRGBA, 0, len(population))
	for c := range population {
		keys = append(keys, c)
	}
	slices.SortFunc(keys, func(a, b color.NRGBA) int {
		return cmp.Compare(pack(a), pack(b))
	})

	var huePopulation [360]float64
	populationSum := 0.0
	candidates := make([]scored, 0, len(keys))
	for _, c := range keys {
		h := hct.FromColor(c)
		entry := scored{colour: c, hue: float64(h.Hue), chroma: float64(h.Chroma)}
		candidates = append(candidates, entry)

		huePopulation[sanitiseDegrees(int(math.Floor(entry.hue)))] += float64(population[c])
		populationSum += float64(population[c])
	}

	var hueExcitedProportions [360]float64
	if populationSum > 0 {
		for hue := 0; hue < 360; hue++ {
			proportion := huePopulation[hue] / populationSum
			for i := hue - 14; i < hue+16; i++ {
				hueExcitedProportions[sanitiseDegrees(i)] += proportion
			}
		}
	}

	ranked := make([]scored, 0, len(candidates))
	for _, entry := range candidates {
		proportion := hueExcitedProportions[sanitiseDegrees(int(math.Round(entry.hue)))]
		if opts.Filter && (entry.chroma < cutoffChroma || proportion <= cutoffExcitedProportion) {
			continue
		}

		chromaWeight := weightChromaAbove
		if entry.chroma < targetChroma {
			chromaWeight = weightChromaBelow
		}
		entry.score = proportion*100*weightProportion + (entry.chroma-targetChroma)*chromaWeight
		ranked = append(ranked, entry)
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var chosen []scored
	for minDistance := 90; minDistance >= 15; minDistance-- {
		chosen = chosen[:0]
		for _, entry := range ranked {
			duplicate := false
			for _, c := range chosen {
				if hueDistance(entry.hue, c.hue) < float64(minDistance) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				chosen = append(chosen, entry)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []color.NRGBA{opts.Fallback}
	}

	result := make([]color.NRGBA, len(chosen))
	for i, c := range chosen {
		result[i] = c.colour
	}
	return result
}

// sanitiseDegrees wraps a hue into [0,360).
func sanitiseDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// hueDistance returns the shortest angular distance between two hues.
func hueDistance(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

func pack(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Package quantize reduces a pixel population to a small set of
// representative colours with their populations.
package quantize

import (
	"cmp"
	"image/color"
	"math"
	"math/rand"
	"slices"
)

const (
	// MaxColors is the largest palette Celebi will produce.
	MaxColors = 256

	maxIterations = 10
	minMovement   = 3.0

	// rngSeed makes clustering reproducible for identical input.
	rngSeed = 0x42688
)

// Result maps each quantized colour to the number of pixels it represents.
type Result map[color.NRGBA]int

// Histogram counts opaque pixels by exact colour. Pixels with any
// transparency are ignored.
func Histogram(pixels []color.NRGBA) Result {
	counts := make(Result)
	for _, p := range pixels {
		if p.A < 255 {
			continue
		}
		counts[p]++
	}
	return counts
}

// Celebi quantizes pixels to at most maxColors colours using weighted
// k-means in L*a*b* space, seeded deterministically with k-means++.
// Inputs with fewer distinct colours than maxColors are returned as their
// histogram.
func Celebi(pixels []color.NRGBA, maxColors int) Result {
	if maxColors < 1 {
		maxColors = 1
	}
	if maxColors > MaxColors {
		maxColors = MaxColors
	}

	hist := Histogram(pixels)
	if len(hist) <= maxColors {
		return hist
	}

	// Fixed iteration order keeps the result deterministic.
	unique := make([]color.NRGBA, 0, len(hist))
	for c := range hist {
		unique = append(unique, c)
	}
	slices.SortFunc(unique, func(a, b color.NRGBA) int {
		return cmp.Compare(pack(a), pack(b))
	})

	points := make([]point3D, len(unique))
	weights := make([]float64, len(unique))
	for i, c := range unique {
		points[i] = toLab(c)
		weights[i] = float64(hist[c])
	}

	rng := rand.New(rand.NewSource(rngSeed)) // #nosec G404 - deterministic clustering, not security sensitive
	centroids := initialiseCentroids(points, weights, maxColors, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if iter == 0 || assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && changed == 0 {
			break
		}

		next := recalculate(points, weights, assignments, centroids)
		movement := 0.0
		for i := range centroids {
			movement = math.Max(movement, math.Sqrt(centroids[i].distanceSq(next[i])))
		}
		centroids = next
		if movement < minMovement {
			break
		}
	}

	// Final assignment against the settled centroids.
	populations := make([]float64, len(centroids))
	for i, p := range points {
		populations[nearestCentroid(p, centroids)] += weights[i]
	}

	result := make(Result, len(centroids))
	for i, c := range centroids {
		if populations[i] == 0 {
			continue
		}
		result[fromLab(c)] += int(populations[i])
	}
	return result
}

// initialiseCentroids picks k starting centroids with weighted k-means++.
func initialiseCentroids(points []point3D, weights []float64, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)

	// Start from the most populous colour.
	first := 0
	for i, w := range weights {
		if w > weights[first] {
			first = i
		}
	}
	centroids = append(centroids, points[first])

	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = p.distanceSq(centroids[0])
	}

	for len(centroids) < k {
		total := 0.0
		for i := range points {
			total += distances[i] * weights[i]
		}
		if total == 0 {
			// Every point already coincides with a centroid.
			break
		}

		target := rng.Float64() * total
		chosen := len(points) - 1
		cumulative := 0.0
		for i := range points {
			cumulative += distances[i] * weights[i]
			if cumulative >= target {
				chosen = i
				break
			}
		}

		centroids = append(centroids, points[chosen])
		for i, p := range points {
			distances[i] = math.Min(distances[i], p.distanceSq(points[chosen]))
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distanceSq(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculate moves each centroid to the weighted mean of its points.
// Empty clusters keep their previous position.
func recalculate(points []point3D, weights []float64, assignments []int, previous []point3D) []point3D {
	sums := make([]point3D, len(previous))
	totals := make([]float64, len(previous))

	for i, p := range points {
		c := assignments[i]
		w := weights[i]
		sums[c].L += p.L * w
		sums[c].A += p.A * w
		sums[c].B += p.B * w
		totals[c] += w
	}

	next := make([]point3D, len(previous))
	for i := range previous {
		if totals[i] == 0 {
			next[i] = previous[i]
			continue
		}
		next[i] = point3D{
			L: sums[i].L / totals[i],
			A: sums[i].A / totals[i],
			B: sums[i].B / totals[i],
		}
	}
	return next
}

func pack(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

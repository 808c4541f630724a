package score

import (
	"image/color"
	"slices"
	"testing"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
	grey = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func TestScoreEmptyUsesFallback(t *testing.T) {
	got := Score(nil, DefaultOptions())
	if len(got) != 1 || got[0] != GoogleBlue {
		t.Errorf("Score(nil) = %v, want [GoogleBlue]", got)
	}
}

func TestScoreAchromaticUsesFallback(t *testing.T) {
	got := Score(map[color.NRGBA]int{grey: 100}, DefaultOptions())
	if len(got) != 1 || got[0] != GoogleBlue {
		t.Errorf("Score(grey) = %v, want [GoogleBlue]", got)
	}
}

func TestScoreUnfilteredKeepsAchromatic(t *testing.T) {
	opts := DefaultOptions()
	opts.Filter = false

	got := Score(map[color.NRGBA]int{grey: 100}, opts)
	if len(got) != 1 || got[0] != grey {
		t.Errorf("Score(grey, unfiltered) = %v, want [grey]", got)
	}
}

func TestScoreSingleColour(t *testing.T) {
	got := Score(map[color.NRGBA]int{red: 1}, DefaultOptions())
	if len(got) != 1 || got[0] != red {
		t.Errorf("Score(red) = %v, want [red]", got)
	}
}

func TestScorePrefersDominantColour(t *testing.T) {
	population := map[color.NRGBA]int{
		red:  9000,
		blue: 400,
		grey: 5000,
	}

	got := Score(population, DefaultOptions())
	if len(got) == 0 || got[0] != red {
		t.Fatalf("Score() = %v, want red first", got)
	}
	if !slices.Contains(got, blue) {
		t.Errorf("Score() = %v, want blue included", got)
	}
	if slices.Contains(got, grey) {
		t.Errorf("Score() = %v, grey should be filtered", got)
	}
}

func TestScoreDesired(t *testing.T) {
	population := map[color.NRGBA]int{
		red:                              100,
		blue:                             100,
		{G: 200, A: 255}:                 100,
		{R: 255, G: 200, A: 255}:         100,
		{R: 200, B: 200, A: 255}:         100,
		{G: 160, B: 200, A: 255}:         100,
		{R: 120, G: 60, B: 10, A: 255}:   100,
		{R: 250, G: 120, B: 200, A: 255}: 100,
	}

	opts := DefaultOptions()
	opts.Desired = 2
	if got := Score(population, opts); len(got) != 2 {
		t.Errorf("Score() returned %d colours, want 2", len(got))
	}
}

func TestScoreDeterministic(t *testing.T) {
	population := map[color.NRGBA]int{red: 10, blue: 10, {G: 255, A: 255}: 10}
	first := Score(population, DefaultOptions())
	for i := 0; i < 10; i++ {
		if got := Score(population, DefaultOptions()); !slices.Equal(got, first) {
			t.Fatalf("Score() = %v, want %v", got, first)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 180, 90},
	}
	for _, tt := range tests {
		if got := hueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("hueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSanitiseDegrees(t *testing.T) {
	for in, want := range map[int]int{-1: 359, 0: 0, 360: 0, 375: 15, -370: 350} {
		if got := sanitiseDegrees(in); got != want {
			t.Errorf("sanitiseDegrees(%d) = %d, want %d", in, got, want)
		}
	}
}

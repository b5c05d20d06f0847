package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/histogram"
)

// darkLumaCeil bounds the histogram region considered "outline-dark".
// Outlines live in the bottom quarter of the luminance range; anything
// brighter is shading or background.
const darkLumaCeil = 64

// minDarkFraction is the share of pixels that must be outline-dark before a
// data-driven suggestion is attempted. Below it the image has no meaningful
// outline mass and the engine default is returned unchanged.
const minDarkFraction = 0.005

// ThresholdSuggestion is a data-driven starting point for the engine's
// outline threshold. It is a heuristic aid for interactive tuning, not part
// of the matting pipeline, and never alters engine behavior by itself.
type ThresholdSuggestion struct {
	// OutlineThreshold is the suggested Config.OutlineThreshold.
	OutlineThreshold int `json:"outline_threshold"`

	// DarkPixelFraction is the share of pixels with luminance below 64.
	DarkPixelFraction float64 `json:"dark_pixel_fraction"`

	// Note explains how the suggestion was derived.
	Note string `json:"note"`
}

// SuggestThreshold derives an outline threshold from the image's luminance
// histogram: it locates the darkest peak (the outline ink) and suggests the
// quietest bin between that peak and the midtones, so the threshold clears
// the outline without swallowing dark shading.
//
// Images with no significant dark mass get the engine default back.
func SuggestThreshold(img image.Image, fallback int) *ThresholdSuggestion {
	gray := effect.Grayscale(img)
	bins := histogram.NewRGBAHistogram(gray).R.Bins

	total := 0
	dark := 0
	for i, n := range bins {
		total += n
		if i < darkLumaCeil {
			dark += n
		}
	}
	if total == 0 {
		return &ThresholdSuggestion{
			OutlineThreshold:  fallback,
			DarkPixelFraction: 0,
			Note:              "empty image; keeping the configured default",
		}
	}

	frac := float64(dark) / float64(total)
	if frac < minDarkFraction {
		return &ThresholdSuggestion{
			OutlineThreshold:  fallback,
			DarkPixelFraction: frac,
			Note:              "no significant dark outline mass; keeping the configured default",
		}
	}

	// Darkest peak: the outline ink's luminance.
	peak := 0
	for i := 1; i < darkLumaCeil; i++ {
		if bins[i] > bins[peak] {
			peak = i
		}
	}

	// Quietest bin between the ink peak and the midtones. A zero bin is a
	// clean separation and wins immediately.
	valley := peak
	minCount := bins[peak]
	for i := peak + 1; i <= 127; i++ {
		if bins[i] == 0 {
			valley = i
			break
		}
		if bins[i] < minCount {
			minCount = bins[i]
			valley = i
		}
	}

	return &ThresholdSuggestion{
		OutlineThreshold:  valley,
		DarkPixelFraction: frac,
		Note:              "set at the quietest luminance bin above the darkest peak",
	}
}

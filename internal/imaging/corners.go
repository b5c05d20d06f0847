package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// uniformLabDistance is the CIE-Lab distance under which two corner colors
// read as "the same background". Roughly one just-noticeable difference;
// anything larger suggests a corner landed on foreground content.
const uniformLabDistance = 0.1

// CornerSample is one of the four background reference colors the matting
// engine will use, with its position and hex rendering.
type CornerSample struct {
	Position string `json:"position"` // "top-left", "top-right", "bottom-left", "bottom-right"
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Hex      string `json:"hex"` // "#RRGGBB", alpha excluded
	Alpha    int    `json:"alpha"`
}

// CornerReport describes the four corner references and how well they agree.
//
// The engine samples corners blindly (no validation, no fallback); this
// report exists so a caller can detect an unrepresentative corner before
// committing to a cleanup run.
type CornerReport struct {
	Corners []CornerSample `json:"corners"`

	// MaxPairwiseDistance is the largest CIE-Lab distance between any two
	// corner colors. 0 means all four corners are identical.
	MaxPairwiseDistance float64 `json:"max_pairwise_distance"`

	// Uniform is true when every pairwise distance is below the
	// just-noticeable threshold, i.e. the corners plausibly sample one
	// background color.
	Uniform bool `json:"uniform"`
}

// SampleCorners reads the four corner pixels the engine will use as
// background references and reports their perceptual agreement.
func SampleCorners(img image.Image) (*CornerReport, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", w, h)
	}

	positions := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", w - 1, 0},
		{"bottom-left", 0, h - 1},
		{"bottom-right", w - 1, h - 1},
	}

	samples := make([]CornerSample, 0, 4)
	labs := make([]colorful.Color, 0, 4)
	for _, p := range positions {
		r, g, b, a := img.At(bounds.Min.X+p.x, bounds.Min.Y+p.y).RGBA()
		r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

		c := colorful.Color{
			R: float64(r8) / 255.0,
			G: float64(g8) / 255.0,
			B: float64(b8) / 255.0,
		}
		labs = append(labs, c)
		samples = append(samples, CornerSample{
			Position: p.name,
			X:        p.x,
			Y:        p.y,
			Hex:      c.Hex(),
			Alpha:    int(a8),
		})
	}

	maxDist := 0.0
	for i := 0; i < len(labs); i++ {
		for j := i + 1; j < len(labs); j++ {
			if d := labs[i].DistanceLab(labs[j]); d > maxDist {
				maxDist = d
			}
		}
	}

	return &CornerReport{
		Corners:             samples,
		MaxPairwiseDistance: maxDist,
		Uniform:             maxDist < uniformLabDistance,
	}, nil
}

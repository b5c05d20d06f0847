package matte

// emptyAlpha is the alpha below which a pixel is treated as already empty:
// two empty pixels always match, and an empty pixel never matches a
// non-empty one.
const emptyAlpha = 10

// luma returns the perceived brightness of a color using the ITU-R BT.601
// broadcast weights (0.299*R + 0.587*G + 0.114*B). The weights are fixed;
// only the threshold compared against them is configurable.
func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// isOutline reports whether px is a protected outline pixel: opaque
// (alpha at or above OpaqueAlphaFloor) and dark (luma at or below
// OutlineThreshold). Outline pixels are never removed.
func (c Config) isOutline(px pixel) bool {
	if int(px.a) < c.OpaqueAlphaFloor {
		return false
	}
	return luma(px.r, px.g, px.b) <= float64(c.OutlineThreshold)
}

// similar reports whether two pixels match within FillTolerance.
//
// Two near-transparent pixels are always similar; a near-transparent pixel
// never matches an opaque one. Otherwise each channel must independently be
// within FillTolerance (per-channel bound, not Euclidean distance).
func (c Config) similar(p, q pixel) bool {
	pEmpty := p.a < emptyAlpha
	qEmpty := q.a < emptyAlpha
	if pEmpty && qEmpty {
		return true
	}
	if pEmpty != qEmpty {
		return false
	}
	return absDiff(p.r, q.r) <= c.FillTolerance &&
		absDiff(p.g, q.g) <= c.FillTolerance &&
		absDiff(p.b, q.b) <= c.FillTolerance
}

// ambiguous reports whether px looks like a background remnant for the
// isolated-pixel sweep: green-dominant (green within GreenSlack of red and
// blue and above GreenFloor) or semi-transparent (alpha below
// TranslucentCeil). Already-empty pixels are not ambiguous.
func (c Config) ambiguous(px pixel) bool {
	if px.a < emptyAlpha {
		return false
	}
	g := int(px.g)
	if g > int(px.r)-c.GreenSlack && g > int(px.b)-c.GreenSlack && g > c.GreenFloor {
		return true
	}
	return int(px.a) < c.TranslucentCeil
}

// absDiff returns |a-b| for 8-bit channel values.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

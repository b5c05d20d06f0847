package matte

// sweepTransparentAlpha: a neighbor at or below this alpha counts as a
// transparent neighbor for the trapped-pixel test even if no stage removed
// it.
const sweepTransparentAlpha = 50

// sweep is the isolated-pixel pass: a single scan catching ambiguous pixels
// trapped in the gap between the protected outline ring and an already
// cleared region, which dilation's adjacency rule can miss (most visibly at
// the image edge, where the "cleared" side is out of bounds).
//
// A still-kept, non-outline pixel is removed when it classifies as
// ambiguous and its 8-neighborhood contains both at least one outline pixel
// and at least one removed or transparent pixel. Out-of-bounds neighbors
// count as transparent.
func (r *remover) sweep() {
	w, h := r.pm.Width, r.pm.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if r.mask[i] == stateRemoved {
				continue
			}
			px := r.pm.atIndex(i)
			if r.cfg.isOutline(px) {
				continue
			}
			if !r.cfg.ambiguous(px) {
				continue
			}

			adjOutline := false
			adjCleared := false
			for _, d := range neighbors8 {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					adjCleared = true
					continue
				}
				ni := ny*w + nx
				if r.mask[ni] == stateRemoved {
					adjCleared = true
					continue
				}
				npx := r.pm.atIndex(ni)
				if r.cfg.isOutline(npx) {
					adjOutline = true
				}
				if npx.a < sweepTransparentAlpha {
					adjCleared = true
				}
			}

			if adjOutline && adjCleared {
				r.markRemoved(i)
				r.isolatedRemoved++
			}
		}
	}
}

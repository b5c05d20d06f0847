package matte

import "context"

// dilateAlphaFloor: pixels at or below this alpha are already effectively
// empty and are left for the compositor to ignore rather than counted as
// dilation removals.
const dilateAlphaFloor = 5

// dilate peels antialiased fringe pixels adjacent to the removed region,
// one concentric ring per round, for at most DilationPasses rounds.
//
// Each round reads a snapshot of the mask taken at the round's start: a
// pixel's eligibility depends only on state before the round began, never on
// removals decided earlier in the same round. Without the snapshot a single
// pass would flood through an entire connected region in scan order.
//
// A pixel is eligible when it is not yet removed, is not outline, has alpha
// above dilateAlphaFloor, and at least one of its 8 neighbors was removed in
// the snapshot. All eligible pixels commit together at round end. The first
// round that removes nothing terminates the stage (fixpoint).
//
// ctx is polled once per round; this is the pipeline's only cancellation
// point, and it fires before any pixel data has been rewritten.
func (r *remover) dilate(ctx context.Context) error {
	if r.cfg.DilationPasses == 0 {
		return nil
	}

	w, h := r.pm.Width, r.pm.Height
	snapshot := make([]cellState, len(r.mask))
	pending := make([]int, 0, w+h)

	for pass := 0; pass < r.cfg.DilationPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		copy(snapshot, r.mask)
		pending = pending[:0]

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				if snapshot[i] == stateRemoved {
					continue
				}
				px := r.pm.atIndex(i)
				if px.a <= dilateAlphaFloor {
					continue
				}
				if r.cfg.isOutline(px) {
					continue
				}
				if !adjacentRemoved(snapshot, w, h, x, y) {
					continue
				}
				pending = append(pending, i)
			}
		}

		if len(pending) == 0 {
			return nil
		}
		for _, i := range pending {
			r.markRemoved(i)
		}
		r.edgeRemoved += len(pending)
	}
	return nil
}

// adjacentRemoved reports whether any 8-neighbor of (x, y) is removed in the
// given mask snapshot. Out-of-bounds neighbors do not count.
func adjacentRemoved(mask []cellState, w, h, x, y int) bool {
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if mask[ny*w+nx] == stateRemoved {
			return true
		}
	}
	return false
}

package matte

// floodFill removes the background region connected to the image border.
//
// The frontier is seeded with every perimeter pixel (top and bottom rows
// first, then the left and right columns), then processed FIFO. A visited
// pixel is classified exactly once:
//
//   - outline: expansion stops, the pixel stays kept
//   - similar to any corner reference, or alpha below OpaqueAlphaFloor:
//     removed, and its 4-connected neighbors join the frontier
//   - anything else: kept (true foreground at this stage)
//
// Diagonals are deliberately excluded so the fill cannot leak through a
// one-pixel outline drawn with 4-connected strokes. The result is pure
// reachability; the fixed seeding and FIFO order exist for reproducible
// traces, not correctness.
func (r *remover) floodFill() {
	w, h := r.pm.Width, r.pm.Height

	q := newFrontier(2 * (w + h))
	for x := 0; x < w; x++ {
		q.push(x, 0)
		q.push(x, h-1)
	}
	for y := 1; y < h-1; y++ {
		q.push(0, y)
		q.push(w-1, y)
	}

	for {
		x, y, ok := q.pop()
		if !ok {
			break
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		i := y*w + x
		if r.mask[i] != stateUnvisited {
			continue
		}

		px := r.pm.atIndex(i)
		if r.cfg.isOutline(px) {
			r.mask[i] = stateKept
			continue
		}

		if r.cfg.matchesBackground(px, r.refs) || int(px.a) < r.cfg.OpaqueAlphaFloor {
			r.markRemoved(i)
			q.push(x-1, y)
			q.push(x+1, y)
			q.push(x, y-1)
			q.push(x, y+1)
			continue
		}

		r.mask[i] = stateKept
	}
}

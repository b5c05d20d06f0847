package matte

import "context"

// Stats summarizes one Remove invocation.
//
// Counters are deterministic: identical (pixmap, config) inputs yield
// identical Stats. Wall-clock timing deliberately lives with the caller.
type Stats struct {
	// PixelsRemoved is the total number of pixels cleared across all stages.
	PixelsRemoved int `json:"pixels_removed"`

	// EdgePixelsRemoved counts removals contributed by the dilation stage.
	EdgePixelsRemoved int `json:"edge_pixels_removed"`

	// IsolatedPixelsRemoved counts removals contributed by the isolated
	// sweep.
	IsolatedPixelsRemoved int `json:"isolated_pixels_removed"`

	// TotalPixels is width*height.
	TotalPixels int `json:"total_pixels"`

	// RemovalPercentage is 100*PixelsRemoved/TotalPixels.
	RemovalPercentage float64 `json:"removal_percentage"`
}

// remover carries the mutable state of one invocation: the pixmap, the flat
// per-pixel mask (indexed y*Width+x) and the running counters. It lives for
// exactly one Remove call and is never shared.
type remover struct {
	pm   *Pixmap
	cfg  Config
	refs [4]pixel
	mask []cellState

	removed         int
	edgeRemoved     int
	isolatedRemoved int
}

// Remove runs the matting pipeline over pm in place and returns the removal
// statistics.
//
// Validation is fail-fast: an invalid pixmap (ErrInvalidImage) or config
// (ErrInvalidConfig) is rejected before any mask is allocated or any pixel
// touched. Once validation passes the pipeline runs to completion
// deterministically; the only other error source is ctx, which is observed
// between dilation rounds and leaves pm unmodified when it fires (the
// compositor is what writes pixels, and it only runs after dilation).
func Remove(ctx context.Context, pm *Pixmap, cfg Config) (Stats, error) {
	if err := pm.validate(); err != nil {
		return Stats{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}

	r := &remover{
		pm:   pm,
		cfg:  cfg,
		refs: cornerRefs(pm),
		mask: make([]cellState, pm.Width*pm.Height),
	}

	r.floodFill()
	if err := r.dilate(ctx); err != nil {
		return Stats{}, err
	}
	r.sweep()
	r.composite()

	total := pm.Width * pm.Height
	return Stats{
		PixelsRemoved:         r.removed,
		EdgePixelsRemoved:     r.edgeRemoved,
		IsolatedPixelsRemoved: r.isolatedRemoved,
		TotalPixels:           total,
		RemovalPercentage:     100 * float64(r.removed) / float64(total),
	}, nil
}

// markRemoved advances one cell to stateRemoved and bumps the total counter.
// Callers must have already established that the pixel is not outline.
func (r *remover) markRemoved(i int) {
	r.mask[i] = stateRemoved
	r.removed++
}

package matte

// previewHighlight replaces removed pixels in preview mode. Translucent red,
// so kept content stays recognizable underneath the overlay.
var previewHighlight = pixel{r: 255, g: 0, b: 0, a: 128}

// composite applies the final mask to the pixmap.
//
// Destructive mode overwrites every removed pixel with fully transparent
// black; preview mode overwrites with previewHighlight. Kept pixels are left
// byte-for-byte unchanged in both modes, and removed pixels lose their
// original data in both modes (preview is diagnostic, not reversible).
func (r *remover) composite() {
	fill := pixel{}
	if r.cfg.PreviewMode {
		fill = previewHighlight
	}
	for i, s := range r.mask {
		if s == stateRemoved {
			r.pm.setIndex(i, fill)
		}
	}
}

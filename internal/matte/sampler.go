package matte

// cornerRefs samples the four image corners as background reference colors:
// top-left, top-right, bottom-left, bottom-right.
//
// There is no averaging and no outlier rejection. A corner that lands on
// foreground content silently degrades output quality; this is a documented
// limitation of the source algorithm, kept as-is so results stay comparable.
func cornerRefs(p *Pixmap) [4]pixel {
	w, h := p.Width, p.Height
	return [4]pixel{
		p.at(0, 0),
		p.at(w-1, 0),
		p.at(0, h-1),
		p.at(w-1, h-1),
	}
}

// matchesBackground reports whether px is within FillTolerance of any of the
// four corner references.
func (c Config) matchesBackground(px pixel, refs [4]pixel) bool {
	for _, ref := range refs {
		if c.similar(px, ref) {
			return true
		}
	}
	return false
}

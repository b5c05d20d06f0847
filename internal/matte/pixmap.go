package matte

import (
	"errors"
	"fmt"
)

// ErrInvalidImage indicates a pixmap with non-positive dimensions or a pixel
// buffer whose length does not match width*height*4.
var ErrInvalidImage = errors.New("invalid image")

// Pixmap is a row-major RGBA pixel buffer.
//
// Pixels are stored as 4 consecutive bytes (R, G, B, A) per pixel, rows
// top-to-bottom, with no padding between rows: the pixel at (x, y) starts at
// offset (y*Width+x)*4. This is the same layout as the Pix slice of a
// stride-tight *image.NRGBA.
//
// A Pixmap is exclusively owned by one Remove invocation for its duration.
type Pixmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixmap allocates a zeroed (fully transparent) pixmap of the given size.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	pix := make([]uint8, len(p.Pix))
	copy(pix, p.Pix)
	return &Pixmap{Width: p.Width, Height: p.Height, Pix: pix}
}

// validate checks dimensions and buffer length before any mask is allocated.
func (p *Pixmap) validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil pixmap", ErrInvalidImage)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, p.Width, p.Height)
	}
	if want := p.Width * p.Height * 4; len(p.Pix) != want {
		return fmt.Errorf("%w: buffer length %d, want %d", ErrInvalidImage, len(p.Pix), want)
	}
	return nil
}

// pixel is one RGBA sample with 8-bit components.
type pixel struct {
	r, g, b, a uint8
}

// at returns the pixel at (x, y). Coordinates must be in bounds.
func (p *Pixmap) at(x, y int) pixel {
	i := (y*p.Width + x) * 4
	return pixel{p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]}
}

// set overwrites the pixel at (x, y).
func (p *Pixmap) set(x, y int, px pixel) {
	i := (y*p.Width + x) * 4
	p.Pix[i] = px.r
	p.Pix[i+1] = px.g
	p.Pix[i+2] = px.b
	p.Pix[i+3] = px.a
}

// atIndex returns the pixel at flat index i = y*Width+x.
func (p *Pixmap) atIndex(i int) pixel {
	o := i * 4
	return pixel{p.Pix[o], p.Pix[o+1], p.Pix[o+2], p.Pix[o+3]}
}

// setIndex overwrites the pixel at flat index i = y*Width+x.
func (p *Pixmap) setIndex(i int, px pixel) {
	o := i * 4
	p.Pix[o] = px.r
	p.Pix[o+1] = px.g
	p.Pix[o+2] = px.b
	p.Pix[o+3] = px.a
}

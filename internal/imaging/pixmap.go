package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/sprite-matte-mcp/internal/matte"
)

// ToPixmap converts any image.Image into the engine's flat RGBA buffer.
//
// imaging.Clone always produces a stride-tight *image.NRGBA, which is byte
// for byte the row-major (y*w+x)*4 layout matte.Pixmap requires, so the Pix
// slice is adopted directly. The source image is not retained; the returned
// pixmap is safe to mutate.
func ToPixmap(img image.Image) *matte.Pixmap {
	n := imaging.Clone(img)
	return &matte.Pixmap{
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
		Pix:    n.Pix,
	}
}

// FromPixmap wraps a pixmap as an *image.NRGBA without copying. The image
// shares the pixmap's buffer.
func FromPixmap(pm *matte.Pixmap) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pm.Pix,
		Stride: pm.Width * 4,
		Rect:   image.Rect(0, 0, pm.Width, pm.Height),
	}
}

// RenderResult contains an image encoded as base64 PNG for tool responses.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes an image as base64 PNG, optionally rescaling it
// first (scale 1.0 or 0 means no resize; previews of large sheets are
// usually requested at 0.25-0.5).
func EncodePNGBase64(img image.Image, scale float64) (*RenderResult, error) {
	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SavePNG writes an image to disk as PNG. The extension must be .png; the
// matting output always carries alpha, which the other accepted input
// formats cannot round-trip.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

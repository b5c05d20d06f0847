package matte

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a threshold, tolerance or pass count outside its
// valid range. Validation happens before any pixel is touched.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable thresholds for one Remove invocation.
//
// The zero value is not usable; start from DefaultConfig and override fields
// as needed. All thresholds operate on 8-bit channel values.
type Config struct {
	// OutlineThreshold is the brightness (BT.601 luma) at or below which an
	// opaque pixel classifies as protected outline. Range 0-255.
	OutlineThreshold int `json:"outline_threshold"`

	// FillTolerance is the per-channel distance within which a pixel matches
	// a background reference color during flood fill. Range 0-255.
	FillTolerance int `json:"fill_tolerance"`

	// DilationPasses caps the number of dilation rounds. Dilation stops
	// earlier at the first round that removes nothing. Zero disables the
	// stage entirely.
	DilationPasses int `json:"dilation_passes"`

	// OpaqueAlphaFloor is the alpha at or above which a pixel counts as
	// opaque for outline detection; pixels below it are background-removable
	// during flood fill. Fixed at 128 in practice. Range 0-255.
	OpaqueAlphaFloor int `json:"opaque_alpha_floor"`

	// PreviewMode replaces removed pixels with a translucent red highlight
	// instead of transparency. Diagnostic only; original pixel data for
	// removed pixels is discarded either way.
	PreviewMode bool `json:"preview_mode"`

	// GreenSlack, GreenFloor and TranslucentCeil parameterize the
	// isolated-pixel sweep's "ambiguous" test. They are visually tuned
	// constants for a greenish edge artifact; change them only to match a
	// different generator's fringe color. Range 0-255 each.
	GreenSlack      int `json:"green_slack"`
	GreenFloor      int `json:"green_floor"`
	TranslucentCeil int `json:"translucent_ceil"`
}

// DefaultConfig returns the tuned defaults: outline threshold 20, fill
// tolerance 80, 50 dilation passes, alpha floor 128, destructive output.
func DefaultConfig() Config {
	return Config{
		OutlineThreshold: 20,
		FillTolerance:    80,
		DilationPasses:   50,
		OpaqueAlphaFloor: 128,
		PreviewMode:      false,
		GreenSlack:       15,
		GreenFloor:       20,
		TranslucentCeil:  200,
	}
}

// Validate reports whether every field is inside its documented range.
// The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	check := func(name string, v int) error {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s %d outside [0,255]", ErrInvalidConfig, name, v)
		}
		return nil
	}
	if err := check("outline_threshold", c.OutlineThreshold); err != nil {
		return err
	}
	if err := check("fill_tolerance", c.FillTolerance); err != nil {
		return err
	}
	if err := check("opaque_alpha_floor", c.OpaqueAlphaFloor); err != nil {
		return err
	}
	if err := check("green_slack", c.GreenSlack); err != nil {
		return err
	}
	if err := check("green_floor", c.GreenFloor); err != nil {
		return err
	}
	if err := check("translucent_ceil", c.TranslucentCeil); err != nil {
		return err
	}
	if c.DilationPasses < 0 {
		return fmt.Errorf("%w: dilation_passes %d is negative", ErrInvalidConfig, c.DilationPasses)
	}
	return nil
}

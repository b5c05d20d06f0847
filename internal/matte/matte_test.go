package matte

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

var (
	white = pixel{255, 255, 255, 255}
	black = pixel{0, 0, 0, 255}
	red   = pixel{200, 0, 0, 255}
	green = pixel{0, 200, 0, 255}
)

// solidPixmap creates a pixmap filled with a single color.
func solidPixmap(w, h int, px pixel) *Pixmap {
	p := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.set(x, y, px)
		}
	}
	return p
}

func TestRemove_SolidBackground(t *testing.T) {
	// Every pixel matches the corner reference: the flood fill alone should
	// clear the whole image.
	pm := solidPixmap(10, 10, white)
	cfg := DefaultConfig()
	cfg.OutlineThreshold = 20

	stats, err := Remove(context.Background(), pm, cfg)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if stats.PixelsRemoved != 100 {
		t.Errorf("PixelsRemoved: got %d, want 100", stats.PixelsRemoved)
	}
	if stats.RemovalPercentage != 100.0 {
		t.Errorf("RemovalPercentage: got %v, want 100.0", stats.RemovalPercentage)
	}
	for i := 0; i < len(pm.Pix); i++ {
		if pm.Pix[i] != 0 {
			t.Fatalf("pixel byte %d not cleared: got %d", i, pm.Pix[i])
		}
	}
}

func TestRemove_SolidOutline(t *testing.T) {
	// Every pixel is opaque and below the outline threshold. The outline
	// protection must win over the corner similarity match.
	pm := solidPixmap(10, 10, black)
	cfg := DefaultConfig()

	stats, err := Remove(context.Background(), pm, cfg)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if stats.PixelsRemoved != 0 {
		t.Errorf("PixelsRemoved: got %d, want 0", stats.PixelsRemoved)
	}
	if stats.RemovalPercentage != 0.0 {
		t.Errorf("RemovalPercentage: got %v, want 0.0", stats.RemovalPercentage)
	}
	if pm.at(5, 5) != black {
		t.Error("interior pixel was modified")
	}
}

func TestRemove_BorderedSquare(t *testing.T) {
	// One-pixel background border around an 8x8 outline-colored square.
	// Exactly the 36 border pixels go; the square is fully protected.
	pm := solidPixmap(10, 10, black)
	for x := 0; x < 10; x++ {
		pm.set(x, 0, white)
		pm.set(x, 9, white)
	}
	for y := 0; y < 10; y++ {
		pm.set(0, y, white)
		pm.set(9, y, white)
	}

	stats, err := Remove(context.Background(), pm, DefaultConfig())
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if stats.PixelsRemoved != 36 {
		t.Errorf("PixelsRemoved: got %d, want 36", stats.PixelsRemoved)
	}
	if stats.EdgePixelsRemoved != 0 {
		t.Errorf("EdgePixelsRemoved: got %d, want 0", stats.EdgePixelsRemoved)
	}
	if stats.IsolatedPixelsRemoved != 0 {
		t.Errorf("IsolatedPixelsRemoved: got %d, want 0", stats.IsolatedPixelsRemoved)
	}
	if stats.RemovalPercentage != 36.0 {
		t.Errorf("RemovalPercentage: got %v, want 36.0", stats.RemovalPercentage)
	}
	if pm.at(5, 5) != black {
		t.Error("protected interior pixel was modified")
	}
	if (pm.at(0, 0) != pixel{}) {
		t.Error("border pixel was not cleared")
	}
}

func TestRemove_TrappedAmbiguousPixel(t *testing.T) {
	// A greenish pixel sits between an outline pixel and the flood-filled
	// background. Dilation is disabled so only the isolated sweep can claim
	// it; the stats attribution proves which stage did.
	pm := solidPixmap(10, 10, white)
	pm.set(5, 5, black)
	pm.set(5, 4, green)

	cfg := DefaultConfig()
	cfg.DilationPasses = 0

	stats, err := Remove(context.Background(), pm, cfg)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if stats.IsolatedPixelsRemoved != 1 {
		t.Errorf("IsolatedPixelsRemoved: got %d, want 1", stats.IsolatedPixelsRemoved)
	}
	if stats.EdgePixelsRemoved != 0 {
		t.Errorf("EdgePixelsRemoved: got %d, want 0", stats.EdgePixelsRemoved)
	}
	if (pm.at(5, 4) != pixel{}) {
		t.Error("trapped greenish pixel was not cleared")
	}
	if pm.at(5, 5) != black {
		t.Error("outline pixel was modified")
	}
}

func TestRemove_ZeroDilationPasses(t *testing.T) {
	// With the pass cap at zero the dilation stage is a no-op regardless of
	// image content. The red pixel would otherwise be eaten on round one.
	pm := solidPixmap(10, 10, white)
	pm.set(4, 4, red)

	cfg := DefaultConfig()
	cfg.DilationPasses = 0

	stats, err := Remove(context.Background(), pm, cfg)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if stats.EdgePixelsRemoved != 0 {
		t.Errorf("EdgePixelsRemoved: got %d, want 0", stats.EdgePixelsRemoved)
	}
	if pm.at(4, 4) != red {
		t.Error("pixel removed despite dilation_passes=0")
	}

	// Same image with the default cap: dilation claims it.
	pm2 := solidPixmap(10, 10, white)
	pm2.set(4, 4, red)
	stats2, err := Remove(context.Background(), pm2, DefaultConfig())
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if stats2.EdgePixelsRemoved == 0 {
		t.Error("expected dilation removals with default pass cap")
	}
}

func TestRemove_Deterministic(t *testing.T) {
	build := func() *Pixmap {
		pm := solidPixmap(16, 16, white)
		for x := 4; x <= 11; x++ {
			pm.set(x, 4, black)
			pm.set(x, 11, black)
		}
		for y := 4; y <= 11; y++ {
			pm.set(4, y, black)
			pm.set(11, y, black)
		}
		for y := 5; y <= 10; y++ {
			for x := 5; x <= 10; x++ {
				pm.set(x, y, red)
			}
		}
		return pm
	}

	pm1, pm2 := build(), build()
	cfg := DefaultConfig()

	stats1, err := Remove(context.Background(), pm1, cfg)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	stats2, err := Remove(context.Background(), pm2, cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !bytes.Equal(pm1.Pix, pm2.Pix) {
		t.Error("repeated runs produced different buffers")
	}
	if stats1 != stats2 {
		t.Errorf("repeated runs produced different stats: %+v vs %+v", stats1, stats2)
	}
}

func TestRemove_OutlinedSprite(t *testing.T) {
	// Green background, black outline rectangle, red interior: the shape the
	// engine exists for. Background goes, outline and interior survive.
	bg := pixel{0, 255, 0, 255}
	pm := solidPixmap(16, 16, bg)
	for x := 4; x <= 11; x++ {
		pm.set(x, 4, black)
		pm.set(x, 11, black)
	}
	for y := 4; y <= 11; y++ {
		pm.set(4, y, black)
		pm.set(11, y, black)
	}
	for y := 5; y <= 10; y++ {
		for x := 5; x <= 10; x++ {
			pm.set(x, y, red)
		}
	}

	stats, err := Remove(context.Background(), pm, DefaultConfig())
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if stats.PixelsRemoved == 0 {
		t.Fatal("expected background removal")
	}
	for _, corner := range [][2]int{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		if px := pm.at(corner[0], corner[1]); px.a != 0 {
			t.Errorf("corner (%d,%d) still opaque: %+v", corner[0], corner[1], px)
		}
	}
	if pm.at(4, 4) != black {
		t.Errorf("outline pixel modified: %+v", pm.at(4, 4))
	}
	if pm.at(6, 6) != red {
		t.Errorf("interior pixel modified: %+v", pm.at(6, 6))
	}
}

func TestRemove_OutlineProtectionInvariant(t *testing.T) {
	// Drive the stages individually and assert after each that no outline
	// pixel has been removed, on an image designed to tempt every stage.
	pm := solidPixmap(12, 12, white)
	for x := 2; x <= 9; x++ {
		pm.set(x, 2, black)
		pm.set(x, 9, black)
	}
	for y := 2; y <= 9; y++ {
		pm.set(2, y, black)
		pm.set(9, y, black)
	}
	pm.set(3, 3, green)                    // trapped ambiguous
	pm.set(4, 4, pixel{100, 100, 100, 80}) // semi-transparent fringe

	cfg := DefaultConfig()
	r := &remover{
		pm:   pm,
		cfg:  cfg,
		refs: cornerRefs(pm),
		mask: make([]cellState, pm.Width*pm.Height),
	}

	checkInvariant := func(stage string) {
		t.Helper()
		for y := 0; y < pm.Height; y++ {
			for x := 0; x < pm.Width; x++ {
				i := y*pm.Width + x
				if cfg.isOutline(pm.atIndex(i)) && r.mask[i] == stateRemoved {
					t.Fatalf("%s removed outline pixel (%d,%d)", stage, x, y)
				}
			}
		}
	}

	r.floodFill()
	checkInvariant("floodFill")
	if err := r.dilate(context.Background()); err != nil {
		t.Fatalf("dilate failed: %v", err)
	}
	checkInvariant("dilate")
	r.sweep()
	checkInvariant("sweep")
}

func TestRemove_Monotonic(t *testing.T) {
	// The removed set only grows across stages.
	pm := solidPixmap(12, 12, white)
	for x := 2; x <= 9; x++ {
		pm.set(x, 2, black)
		pm.set(x, 9, black)
	}
	pm.set(3, 3, green)

	r := &remover{
		pm:   pm,
		cfg:  DefaultConfig(),
		refs: cornerRefs(pm),
		mask: make([]cellState, pm.Width*pm.Height),
	}

	removedSet := func() map[int]bool {
		s := make(map[int]bool)
		for i, st := range r.mask {
			if st == stateRemoved {
				s[i] = true
			}
		}
		return s
	}

	r.floodFill()
	afterFlood := removedSet()
	if err := r.dilate(context.Background()); err != nil {
		t.Fatalf("dilate failed: %v", err)
	}
	afterDilate := removedSet()
	r.sweep()
	afterSweep := removedSet()

	for i := range afterFlood {
		if !afterDilate[i] {
			t.Fatalf("dilation reverted removed pixel %d", i)
		}
	}
	for i := range afterDilate {
		if !afterSweep[i] {
			t.Fatalf("sweep reverted removed pixel %d", i)
		}
	}
	if len(afterSweep) < len(afterFlood) {
		t.Error("removed set shrank")
	}
}

func TestRemove_PreviewMode(t *testing.T) {
	pm := solidPixmap(10, 10, white)
	pm.set(5, 5, black)

	cfg := DefaultConfig()
	cfg.PreviewMode = true

	if _, err := Remove(context.Background(), pm, cfg); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if pm.at(0, 0) != previewHighlight {
		t.Errorf("removed pixel: got %+v, want highlight %+v", pm.at(0, 0), previewHighlight)
	}
	if pm.at(5, 5) != black {
		t.Error("kept pixel modified in preview mode")
	}
}

func TestRemove_Cancellation(t *testing.T) {
	pm := solidPixmap(10, 10, white)
	pm.set(4, 4, red) // guarantees at least one dilation round
	before := make([]uint8, len(pm.Pix))
	copy(before, pm.Pix)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Remove(ctx, pm, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got err %v, want context.Canceled", err)
	}
	if !bytes.Equal(pm.Pix, before) {
		t.Error("pixmap modified despite cancellation")
	}
}

func TestRemove_InvalidImage(t *testing.T) {
	tests := []struct {
		name string
		pm   *Pixmap
	}{
		{"zero width", &Pixmap{Width: 0, Height: 10, Pix: make([]uint8, 0)}},
		{"negative height", &Pixmap{Width: 10, Height: -1, Pix: make([]uint8, 40)}},
		{"short buffer", &Pixmap{Width: 10, Height: 10, Pix: make([]uint8, 399)}},
		{"long buffer", &Pixmap{Width: 10, Height: 10, Pix: make([]uint8, 401)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Remove(context.Background(), tt.pm, DefaultConfig())
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("got err %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestRemove_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold too high", func(c *Config) { c.OutlineThreshold = 256 }},
		{"threshold negative", func(c *Config) { c.OutlineThreshold = -1 }},
		{"tolerance too high", func(c *Config) { c.FillTolerance = 300 }},
		{"negative passes", func(c *Config) { c.DilationPasses = -1 }},
		{"alpha floor too high", func(c *Config) { c.OpaqueAlphaFloor = 1000 }},
		{"green slack negative", func(c *Config) { c.GreenSlack = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := solidPixmap(4, 4, white)
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := Remove(context.Background(), pm, cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got err %v, want ErrInvalidConfig", err)
			}
		})
	}
}

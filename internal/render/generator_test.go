package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/warelabel/label-engine/pkg/labelformat"
)

// fakeSurface controls which drawing operations succeed so tests can
// force individual tiers to fail.
type fakeSurface struct {
	width, height int
	refuseAll     bool
	refuseBars    bool // fail black fills only
	fillCalls     int
	strokeCalls   int
	textCalls     int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h}
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }

func (f *fakeSurface) FillRect(x, y, w, h float64, c color.Color) error {
	if f.refuseAll {
		return ErrNoContext
	}
	r, g, b, _ := c.RGBA()
	if f.refuseBars && r == 0 && g == 0 && b == 0 {
		return errors.New("bar fill refused")
	}
	f.fillCalls++
	return nil
}

func (f *fakeSurface) StrokeRect(x, y, w, h, lw float64, c color.Color) error {
	if f.refuseAll {
		return ErrNoContext
	}
	f.strokeCalls++
	return nil
}

func (f *fakeSurface) MeasureString(s string, size float64) (float64, float64, error) {
	if f.refuseAll {
		return 0, 0, ErrNoContext
	}
	return float64(len(s)) * size * 0.6, size, nil
}

func (f *fakeSurface) DrawString(s string, x, y, size float64, c color.Color) error {
	if f.refuseAll {
		return ErrNoContext
	}
	f.textCalls++
	return nil
}

func (f *fakeSurface) DrawImage(img image.Image, x, y int) error {
	if f.refuseAll {
		return ErrNoContext
	}
	return nil
}

func TestGenerate_ExactTier(t *testing.T) {
	gen := NewGenerator()
	surface := newFakeSurface(200, 60)

	result := gen.Generate(surface, "O1A-ORDER1-ITEM1", labelformat.PackingSlipConfig())

	if !result.Success {
		t.Fatalf("Expected success, warnings: %v", result.Warnings)
	}
	if result.Method != labelformat.MethodExact {
		t.Errorf("Expected exact method, got %s", result.Method)
	}
	if surface.fillCalls == 0 {
		t.Error("Expected bars to be drawn")
	}
}

func TestGenerate_FallsBackToTextOnly(t *testing.T) {
	gen := NewGenerator()
	surface := newFakeSurface(200, 60)
	surface.refuseBars = true

	cfg := labelformat.PackingSlipConfig()
	result := gen.Generate(surface, "O1A-ORDER1-ITEM1", cfg)

	if !result.Success {
		t.Fatalf("Expected text-only success, warnings: %v", result.Warnings)
	}
	if result.Method != labelformat.MethodTextOnly {
		t.Errorf("Expected text-only method, got %s", result.Method)
	}
	if surface.strokeCalls == 0 {
		t.Error("Expected fallback border box")
	}
	if len(result.Warnings) < 2 {
		t.Errorf("Expected warnings from both failed tiers, got %v", result.Warnings)
	}
}

func TestGenerate_RefusingSurface(t *testing.T) {
	gen := NewGenerator()
	surface := newFakeSurface(200, 60)
	surface.refuseAll = true

	result := gen.Generate(surface, "O1A-ORDER1-ITEM1", labelformat.PackingSlipConfig())

	if result.Success {
		t.Error("Expected failure when even text rendering is refused")
	}
	if result.Method != labelformat.MethodTextOnly {
		t.Errorf("Expected terminal method text-only, got %s", result.Method)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected non-empty warnings")
	}
}

func TestGenerate_NilSurface(t *testing.T) {
	gen := NewGenerator()

	result := gen.Generate(nil, "O1A-ORDER1-ITEM1", labelformat.PackingSlipConfig())

	if result.Success {
		t.Error("Expected failure for nil surface")
	}
	if result.Method != labelformat.MethodTextOnly {
		t.Errorf("Expected terminal method text-only, got %s", result.Method)
	}
}

func TestGenerate_UnsupportedCharacterWarning(t *testing.T) {
	gen := NewGenerator()
	surface := newFakeSurface(200, 60)

	result := gen.Generate(surface, "ORD\n123", labelformat.PackingSlipConfig())

	if !result.Success {
		t.Fatal("Expected success with substitution")
	}
	found := false
	for _, w := range result.Warnings {
		if w == "1 unsupported character(s) replaced with spaces" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected substitution warning, got %v", result.Warnings)
	}
}

func TestGenerate_PanickingCodecIsContained(t *testing.T) {
	gen := NewGenerator(WithCodec(panicCodec{}))
	surface := newFakeSurface(200, 60)

	result := gen.Generate(surface, "O1A-1-1", labelformat.PackingSlipConfig())

	if !result.Success {
		t.Fatalf("Expected simplified fallback, warnings: %v", result.Warnings)
	}
	if result.Method != labelformat.MethodSimplified {
		t.Errorf("Expected simplified method, got %s", result.Method)
	}
}

type panicCodec struct{}

func (panicCodec) Name() string { return "panic" }
func (panicCodec) Render(Surface, string, labelformat.BarcodeConfig) error {
	panic("codec exploded")
}

func TestGenerate_MatrixFormat(t *testing.T) {
	gen := NewGenerator()
	surface := newFakeSurface(100, 100)

	cfg := labelformat.BarcodeConfig{Width: 100, Height: 100, Margin: 4, Format: labelformat.FormatMatrix}
	result := gen.Generate(surface, "O1A-ORDER1-ITEM1", cfg)

	if !result.Success {
		t.Fatalf("Expected matrix success, warnings: %v", result.Warnings)
	}
	if result.Method != labelformat.MethodExact {
		t.Errorf("Expected exact method for matrix format, got %s", result.Method)
	}
	if surface.fillCalls < 10 {
		t.Errorf("Expected many module fills, got %d", surface.fillCalls)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	gen := NewGenerator()
	cfg := labelformat.PackingSlipConfig()

	first := NewCanvas(cfg.Width, cfg.Height)
	second := NewCanvas(cfg.Width, cfg.Height)

	r1 := gen.Generate(first, "O1A-ORDER1-ITEM1", cfg)
	r2 := gen.Generate(second, "O1A-ORDER1-ITEM1", cfg)

	if r1.Success != r2.Success || r1.Method != r2.Method {
		t.Fatal("Expected identical results for identical inputs")
	}

	imgA, imgB := first.Image(), second.Image()
	if imgA.Bounds() != imgB.Bounds() {
		t.Fatal("Expected identical bounds")
	}
	for y := imgA.Bounds().Min.Y; y < imgA.Bounds().Max.Y; y++ {
		for x := imgA.Bounds().Min.X; x < imgA.Bounds().Max.X; x++ {
			if imgA.At(x, y) != imgB.At(x, y) {
				t.Fatalf("Pixel mismatch at %d,%d", x, y)
			}
		}
	}
}

func TestGenerate_ImageCodecOnCanvas(t *testing.T) {
	gen := NewGenerator(WithCodec(ImageCodec{}))
	cfg := labelformat.PrintConfig()
	canvas := NewCanvas(cfg.Width, cfg.Height)

	result := gen.Generate(canvas, "O1A-ORDER1-ITEM1", cfg)

	if !result.Success {
		t.Fatalf("Expected success, warnings: %v", result.Warnings)
	}
	if result.Method != labelformat.MethodExact {
		t.Errorf("Expected exact method, got %s", result.Method)
	}
	if countDark(canvas.Image()) == 0 {
		t.Error("Expected bars on the canvas")
	}
}

func TestGenerate_ImageCodecEmptyPayloadFallsBack(t *testing.T) {
	// boombuler's encoder rejects empty content; the chain must degrade
	gen := NewGenerator(WithCodec(ImageCodec{}))
	cfg := labelformat.PackingSlipConfig()
	canvas := NewCanvas(cfg.Width, cfg.Height)

	result := gen.Generate(canvas, "", cfg)

	if !result.Success {
		t.Fatalf("Expected fallback success, warnings: %v", result.Warnings)
	}
	if result.Method == labelformat.MethodExact {
		t.Error("Expected a degraded tier for empty payload")
	}
}

func countDark(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0x4000 && g < 0x4000 && bl < 0x4000 {
				n++
			}
		}
	}
	return n
}

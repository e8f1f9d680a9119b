package render

import (
	"fmt"
	"image/color"

	"github.com/boombuler/barcode"
	bcode128 "github.com/boombuler/barcode/code128"

	"github.com/warelabel/label-engine/pkg/labelformat"
)

// ImageCodec is the library-backed exact codec. It encodes with
// boombuler's Code 128 implementation, scales the result to the bar
// zone and blits it onto the surface. Errors from the library (empty
// payload, impossible scale target) surface as codec errors and drive
// the simplified fallback, mirroring the optional-dependency design of
// the exact tier.
type ImageCodec struct{}

// Name identifies the codec in warnings and logs
func (ImageCodec) Name() string { return "image" }

// Render encodes and draws the payload as a scaled barcode image
func (ImageCodec) Render(s Surface, payload string, cfg labelformat.BarcodeConfig) error {
	if s == nil {
		return ErrNoContext
	}

	bc, err := bcode128.Encode(payload)
	if err != nil {
		return fmt.Errorf("codec image: %w", err)
	}

	g := tierFor(cfg)
	barTop, barHeight := g.barZone(cfg)
	targetW := cfg.Width - int(2*g.margin)
	targetH := int(barHeight)
	if targetW <= 0 || targetH <= 0 {
		return fmt.Errorf("codec image: no room in %dx%d label", cfg.Width, cfg.Height)
	}

	scaled, err := barcode.Scale(bc, targetW, targetH)
	if err != nil {
		return fmt.Errorf("codec image: %w", err)
	}

	if err := s.FillRect(0, 0, float64(cfg.Width), float64(cfg.Height), color.White); err != nil {
		return err
	}
	if err := s.DrawImage(scaled, int(g.margin), int(barTop)); err != nil {
		return err
	}

	if cfg.ShowText {
		if err := drawCenteredText(s, payload, cfg, g, barTop+barHeight); err != nil {
			return err
		}
	}

	return nil
}

package render

import (
	"fmt"
	"image/color"

	"github.com/warelabel/label-engine/internal/code128"
	"github.com/warelabel/label-engine/pkg/labelformat"
)

// Codec renders the exact linear symbology for a payload. The
// Generator treats the codec as an optional capability: any error from
// Render drives the fallback to the simplified tier instead of failing
// the generation call.
type Codec interface {
	Name() string
	Render(s Surface, payload string, cfg labelformat.BarcodeConfig) error
}

// PatternCodec is the symbol-table backed codec. It encodes the
// payload with the internal Code 128 encoder and draws the module runs
// directly onto the surface.
type PatternCodec struct{}

// Name identifies the codec in warnings and logs
func (PatternCodec) Name() string { return "pattern" }

// Render draws the exact symbology with size-tiered geometry
func (PatternCodec) Render(s Surface, payload string, cfg labelformat.BarcodeConfig) error {
	if s == nil {
		return ErrNoContext
	}

	symbols, _ := code128.Encode(payload)
	runs := code128.Modules(symbols)

	totalModules := 0
	for _, w := range runs {
		totalModules += w
	}

	g := tierFor(cfg)
	avail := float64(cfg.Width) - 2*g.margin
	if avail <= 0 || totalModules == 0 {
		return fmt.Errorf("codec pattern: no room for %d modules in %dpx width", totalModules, cfg.Width)
	}
	barUnit := avail / float64(totalModules)
	if barUnit <= 0 {
		return fmt.Errorf("codec pattern: bar unit collapsed to zero")
	}

	if err := s.FillRect(0, 0, float64(cfg.Width), float64(cfg.Height), color.White); err != nil {
		return err
	}

	barTop, barHeight := g.barZone(cfg)

	// Center the symbol run inside the quiet zone
	x := g.margin + (avail-barUnit*float64(totalModules))/2
	for i, run := range runs {
		w := barUnit * float64(run)
		if i%2 == 0 {
			if err := s.FillRect(x, barTop, w, barHeight, color.Black); err != nil {
				return err
			}
		}
		x += w
	}

	if cfg.ShowText {
		if err := drawCenteredText(s, payload, cfg, g, barTop+barHeight); err != nil {
			return err
		}
	}

	return nil
}

// drawCenteredText draws the human-readable payload beneath the bars
// with a white halo box behind it for contrast.
func drawCenteredText(s Surface, text string, cfg labelformat.BarcodeConfig, g geometry, barBottom float64) error {
	tw, th, err := s.MeasureString(text, g.fontSize)
	if err != nil {
		return err
	}

	x := (float64(cfg.Width) - tw) / 2
	baseline := barBottom + g.textGap + th
	if max := float64(cfg.Height) - 1; baseline > max {
		baseline = max
	}

	if err := s.FillRect(x-2, baseline-th-1, tw+4, th+3, color.White); err != nil {
		return err
	}
	return s.DrawString(text, x, baseline, g.fontSize, color.Black)
}

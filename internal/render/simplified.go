package render

import (
	"image/color"

	"github.com/warelabel/label-engine/pkg/labelformat"
)

// renderSimplified draws a pseudo-barcode derived from the payload's
// character codes: each character contributes a three-bar/three-space
// motif whose widths come from a rolling hash. The output is visually
// barcode-like but is NOT a decodable symbol stream; it exists so a
// label still looks right when the exact codec is unavailable. The
// result method must be labeled MethodSimplified.
func renderSimplified(s Surface, payload string, cfg labelformat.BarcodeConfig) error {
	if s == nil {
		return ErrNoContext
	}
	if payload == "" {
		payload = " "
	}

	g := tierFor(cfg)
	if err := s.FillRect(0, 0, float64(cfg.Width), float64(cfg.Height), color.White); err != nil {
		return err
	}

	// Six runs per character, module widths in 1..3
	runs := make([]int, 0, len(payload)*6)
	hash := uint32(0)
	for _, r := range payload {
		hash = hash*31 + uint32(r)
		h := hash
		for j := 0; j < 3; j++ {
			runs = append(runs, 1+int(h%3)) // bar
			h /= 3
			runs = append(runs, 1+int(h%2)) // space
			h /= 2
		}
	}

	totalModules := 0
	for _, w := range runs {
		totalModules += w
	}

	avail := float64(cfg.Width) - 2*g.margin
	if avail <= 0 || totalModules == 0 {
		return ErrNoContext
	}
	barUnit := avail / float64(totalModules)

	barTop, barHeight := g.barZone(cfg)

	x := g.margin
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

// renderTextOnly draws the payload as boxed text. The border flags the
// label as a degraded fallback at a glance.
func renderTextOnly(s Surface, payload string, cfg labelformat.BarcodeConfig) error {
	if s == nil {
		return ErrNoContext
	}

	if err := s.FillRect(0, 0, float64(cfg.Width), float64(cfg.Height), color.White); err != nil {
		return err
	}
	if err := s.StrokeRect(1, 1, float64(cfg.Width)-2, float64(cfg.Height)-2, 2, color.Black); err != nil {
		return err
	}

	fontSize := float64(cfg.FontSize)
	if fontSize < 8 {
		fontSize = 8
	}

	tw, th, err := s.MeasureString(payload, fontSize)
	if err != nil {
		return err
	}

	x := (float64(cfg.Width) - tw) / 2
	if x < 4 {
		x = 4
	}
	baseline := (float64(cfg.Height) + th) / 2
	return s.DrawString(payload, x, baseline, fontSize, color.Black)
}

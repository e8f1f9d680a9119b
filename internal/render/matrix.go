package render

import (
	"image/color"

	"github.com/warelabel/label-engine/pkg/labelformat"
)

// matrixModules is the fixed grid size of the placeholder pattern
const matrixModules = 21

// renderMatrix draws the simplified two-dimensional placeholder: a
// 21x21 grid with finder patterns in three corners, timing strips on
// row/column 6 and a data-derived fill. It is a deterministic visual
// approximation of a QR symbol, NOT a standards-compliant or decodable
// symbology, and sits outside the linear fallback chain.
func renderMatrix(s Surface, payload string, cfg labelformat.BarcodeConfig) error {
	if s == nil {
		return ErrNoContext
	}

	g := tierFor(cfg)
	avail := float64(cfg.Width) - 2*g.margin
	if a := float64(cfg.Height) - 2*g.margin; a < avail {
		avail = a
	}
	module := avail / matrixModules
	if module <= 0 {
		return ErrNoContext
	}

	if err := s.FillRect(0, 0, float64(cfg.Width), float64(cfg.Height), color.White); err != nil {
		return err
	}

	// Center the grid in the drawing area
	gridSize := module * matrixModules
	originX := (float64(cfg.Width) - gridSize) / 2
	originY := (float64(cfg.Height) - gridSize) / 2

	runes := []rune(payload)
	for row := 0; row < matrixModules; row++ {
		for col := 0; col < matrixModules; col++ {
			on, reserved := finderModule(row, col)
			if !reserved {
				if row == 6 || col == 6 {
					// Timing strips alternate
					on = (row+col)%2 == 0
				} else if len(runes) > 0 {
					r := runes[(row*matrixModules+col)%len(runes)]
					on = (int(r)+row+col)%3 == 0
				}
			}
			if !on {
				continue
			}
			x := originX + float64(col)*module
			y := originY + float64(row)*module
			if err := s.FillRect(x, y, module, module, color.Black); err != nil {
				return err
			}
		}
	}

	return nil
}

// finderModule reports the module state inside the three 7x7 corner
// finder patterns. reserved is false outside them.
func finderModule(row, col int) (on, reserved bool) {
	corners := [3][2]int{
		{0, 0},                 // top-left
		{0, matrixModules - 7}, // top-right
		{matrixModules - 7, 0}, // bottom-left
	}

	for _, c := range corners {
		r, cl := row-c[0], col-c[1]
		if r < 0 || r > 6 || cl < 0 || cl > 6 {
			continue
		}
		// Outer ring, white separator ring, 3x3 center
		switch {
		case r == 0 || r == 6 || cl == 0 || cl == 6:
			return true, true
		case r >= 2 && r <= 4 && cl >= 2 && cl <= 4:
			return true, true
		default:
			return false, true
		}
	}
	return false, false
}

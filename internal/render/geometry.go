package render

import (
	"github.com/warelabel/label-engine/pkg/labelformat"
)

// geometry holds the size-tier dependent drawing parameters
type geometry struct {
	fontSize   float64 // effective text size
	margin     float64 // quiet zone
	textGap    float64 // gap between bars and text baseline
	minBarArea float64 // minimum vertical fraction kept for bars
}

// tierFor resolves the drawing geometry for a config. Smaller labels
// get thinner margins and smaller fonts but never drop below a
// readable floor.
func tierFor(cfg labelformat.BarcodeConfig) geometry {
	g := geometry{
		fontSize:   float64(cfg.FontSize),
		margin:     float64(cfg.Margin),
		textGap:    4,
		minBarArea: 0.5,
	}

	switch {
	case cfg.Width < labelformat.TinyWidth && cfg.Height < labelformat.TinyHeight:
		if g.fontSize > 6 {
			g.fontSize = 6
		}
		if g.margin > 2 {
			g.margin = 2
		}
		g.textGap = 2
	case cfg.Width < labelformat.SmallWidth && cfg.Height < labelformat.SmallHeight:
		if g.fontSize > 8 {
			g.fontSize = 8
		}
		if g.margin > 3 {
			g.margin = 3
		}
		g.textGap = 3
	}

	// Readable floor
	if g.fontSize < 5 {
		g.fontSize = 5
	}
	if g.margin < 1 {
		g.margin = 1
	}

	return g
}

// barZone computes the vertical extent of the bars: top offset and
// height. When text is shown, the bars give up room for it but keep at
// least minBarArea of the label height.
func (g geometry) barZone(cfg labelformat.BarcodeConfig) (top, height float64) {
	top = g.margin
	height = float64(cfg.Height) - 2*g.margin

	if cfg.ShowText {
		height -= g.fontSize + g.textGap
	}

	if min := float64(cfg.Height) * g.minBarArea; height < min {
		height = min
	}
	return top, height
}

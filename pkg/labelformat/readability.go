package labelformat

import "fmt"

// Geometry tier thresholds, shared with the renderer and the config
// recommender. A label below TinyWidth x TinyHeight is "tiny", below
// SmallWidth x SmallHeight "small", anything else "standard".
const (
	TinyWidth   = 150
	TinyHeight  = 50
	SmallWidth  = 200
	SmallHeight = 60
)

// ModulesPerSymbol is the module count of one Code 128 symbol. Used to
// estimate the printed bar width for a payload.
const ModulesPerSymbol = 11

// TestReadability scores how reliably a scanner is expected to read a
// barcode drawn with cfg. The score starts at 100 and each independent
// problem subtracts from it; 0 is the floor. The result is advisory
// only and never blocks generation.
func TestReadability(cfg BarcodeConfig, payload string) ReadabilityResult {
	result := ReadabilityResult{Score: 100}

	if cfg.Width < 100 {
		result.Score -= 20
		result.Warnings = append(result.Warnings, fmt.Sprintf("barcode width %dpx is below 100px", cfg.Width))
		result.Recommendations = append(result.Recommendations, "increase label width to at least 100px")
	}

	if cfg.Height < 30 {
		result.Score -= 15
		result.Warnings = append(result.Warnings, fmt.Sprintf("barcode height %dpx is below 30px", cfg.Height))
		result.Recommendations = append(result.Recommendations, "increase label height to at least 30px")
	}

	if len(payload) > 0 {
		barWidth := float64(cfg.Width-2*cfg.Margin) / float64(len(payload)*ModulesPerSymbol)
		if barWidth < 1 {
			result.Score -= 30
			result.Warnings = append(result.Warnings, fmt.Sprintf("estimated bar width %.2fpx is below 1px", barWidth))
			result.Recommendations = append(result.Recommendations, "shorten the payload or widen the label")
		} else if barWidth < 1.5 {
			// Marginal but usually scannable; advisory only
			result.Score -= 15
			result.Recommendations = append(result.Recommendations, "widen the label for more reliable scanning")
		}
	}

	if cfg.ShowText && cfg.FontSize < 6 {
		result.Score -= 10
		result.Warnings = append(result.Warnings, fmt.Sprintf("font size %d is too small to read", cfg.FontSize))
		result.Recommendations = append(result.Recommendations, "use font size 6 or larger, or disable text")
	}

	if len(payload) > 20 {
		result.Score -= 10
		result.Warnings = append(result.Warnings, fmt.Sprintf("payload length %d exceeds 20 characters", len(payload)))
		result.Recommendations = append(result.Recommendations, "shorten the payload with OptimizeBarcodeData")
	}

	if cfg.Height > 0 && float64(cfg.Width)/float64(cfg.Height) < 2 {
		result.Score -= 5
		result.Warnings = append(result.Warnings, "aspect ratio below 2:1 wastes vertical space")
		result.Recommendations = append(result.Recommendations, "prefer a wider, shorter label")
	}

	if result.Score < 0 {
		result.Score = 0
	}

	return result
}

// RecommendedConfig derives a barcode configuration from a target label
// footprint, using the same size tiers as the renderer. The returned
// strings explain any non-default settings it applied.
func RecommendedConfig(width, height int) (BarcodeConfig, []string) {
	cfg := BarcodeConfig{
		Width:    width,
		Height:   height,
		FontSize: 10,
		Margin:   5,
		ShowText: true,
		Format:   FormatLinear,
	}

	var notes []string
	switch {
	case width < TinyWidth && height < TinyHeight:
		cfg.FontSize = 6
		cfg.Margin = 2
		cfg.ShowText = false
		notes = append(notes,
			"tiny label: human-readable text disabled to preserve bar height",
			"tiny label: margin reduced to 2px")
	case width < SmallWidth && height < SmallHeight:
		cfg.FontSize = 7
		cfg.Margin = 3
		notes = append(notes, "small label: font size reduced to 7, margin to 3px")
	}

	return cfg, notes
}

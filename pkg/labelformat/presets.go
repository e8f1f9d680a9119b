package labelformat

// Preset names understood by Preset and the HTTP API
const (
	PresetPackingSlip        = "packing-slip"
	PresetPrint              = "print"
	PresetCompactLabelTop    = "compact-label-top"
	PresetCompactLabelBottom = "compact-label-bottom"
)

// PackingSlipConfig is the default geometry for packing slip barcodes
func PackingSlipConfig() BarcodeConfig {
	return BarcodeConfig{Width: 200, Height: 60, FontSize: 10, Margin: 5, ShowText: true, Format: FormatLinear}
}

// PrintConfig is the larger geometry used on full-page print documents
func PrintConfig() BarcodeConfig {
	return BarcodeConfig{Width: 250, Height: 80, FontSize: 12, Margin: 8, ShowText: true, Format: FormatLinear}
}

// CompactLabelTopConfig fits the upper strip of a compact thermal label
func CompactLabelTopConfig() BarcodeConfig {
	return BarcodeConfig{Width: 150, Height: 40, FontSize: 7, Margin: 3, ShowText: true, Format: FormatLinear}
}

// CompactLabelBottomConfig fits the lower strip of a compact thermal
// label. Text is off because the strip has no room for it.
func CompactLabelBottomConfig() BarcodeConfig {
	return BarcodeConfig{Width: 120, Height: 35, FontSize: 6, Margin: 2, ShowText: false, Format: FormatLinear}
}

// Preset returns the named configuration preset
func Preset(name string) (BarcodeConfig, bool) {
	switch name {
	case PresetPackingSlip:
		return PackingSlipConfig(), true
	case PresetPrint:
		return PrintConfig(), true
	case PresetCompactLabelTop:
		return CompactLabelTopConfig(), true
	case PresetCompactLabelBottom:
		return CompactLabelBottomConfig(), true
	default:
		return BarcodeConfig{}, false
	}
}

// PresetNames lists the available presets in a stable order
func PresetNames() []string {
	return []string{
		PresetPackingSlip,
		PresetPrint,
		PresetCompactLabelTop,
		PresetCompactLabelBottom,
	}
}

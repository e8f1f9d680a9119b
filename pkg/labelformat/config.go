// Package labelformat defines the value types for barcode label generation
package labelformat

// Format selects the symbology drawn onto the label
type Format string

const (
	// FormatLinear is the Code 128 style linear symbology
	FormatLinear Format = "code128"
	// FormatMatrix is the simplified two-dimensional placeholder pattern.
	// It is a visual approximation only and is not scanner-decodable.
	FormatMatrix Format = "matrix"
)

// BarcodeConfig describes the geometry and appearance of one label.
// It is a plain value passed per generation call and never mutated.
type BarcodeConfig struct {
	Width    int    `json:"width"`     // Label width in pixels
	Height   int    `json:"height"`    // Label height in pixels
	FontSize int    `json:"font_size"` // Human-readable text size
	Margin   int    `json:"margin"`    // Quiet zone in pixels
	ShowText bool   `json:"show_text"` // Draw the payload beneath the bars
	Format   Format `json:"format,omitempty"`
}

// GenerationMethod reports which rendering tier produced the output
type GenerationMethod string

const (
	// MethodExact is the precise symbology path
	MethodExact GenerationMethod = "exact"
	// MethodSimplified is the pseudo-bar fallback. The output looks like
	// a barcode but is not a standards-decodable symbol stream.
	MethodSimplified GenerationMethod = "simplified"
	// MethodTextOnly draws the payload as boxed text with no bars
	MethodTextOnly GenerationMethod = "text-only"
)

// GenerationResult is returned once per generation call
type GenerationResult struct {
	Success  bool             `json:"success"`
	Method   GenerationMethod `json:"method"`
	Warnings []string         `json:"warnings,omitempty"`
}

// ReadabilityResult is the advisory scan-readability report for a
// payload/config pair. It never blocks generation.
type ReadabilityResult struct {
	Score           int      `json:"score"` // 0-100
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// OptimizedLabelInfo holds the shortened display fields for a physical
// label footprint. Each field is independently bounded.
type OptimizedLabelInfo struct {
	Customer string `json:"customer"`
	Type     string `json:"type"`
	Color    string `json:"color"`
	Date     string `json:"date"`
	Upgrades string `json:"upgrades"`
	Barcode  string `json:"barcode"`
}

package render

import (
	"fmt"

	"github.com/warelabel/label-engine/internal/code128"
	"github.com/warelabel/label-engine/pkg/labelformat"
)

// Generator drives the degraded-rendering chain: exact symbology,
// then the simplified pseudo-barcode, then boxed text. Tiers only ever
// move downward and the chain stops at the first success. Generate
// never panics and never returns an error; every tier failure becomes
// a warning on the result.
type Generator struct {
	codec Codec
}

// Option configures a Generator
type Option func(*Generator)

// WithCodec injects the exact-tier codec implementation
func WithCodec(c Codec) Option {
	return func(g *Generator) { g.codec = c }
}

// NewGenerator creates a Generator using the pattern codec unless an
// option overrides it.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{codec: PatternCodec{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders payload onto surface according to cfg and reports
// which tier produced the output. The surface is mutated in place;
// identical inputs produce pixel-identical output.
func (g *Generator) Generate(surface Surface, payload string, cfg labelformat.BarcodeConfig) labelformat.GenerationResult {
	result := labelformat.GenerationResult{}

	// Seed warnings with the advisory readability report
	readability := labelformat.TestReadability(cfg, payload)
	result.Warnings = append(result.Warnings, readability.Warnings...)

	if unsupported := code128.UnsupportedRunes(payload); len(unsupported) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d unsupported character(s) replaced with spaces", len(unsupported)))
	}

	// The matrix placeholder sits outside the linear fallback chain
	if cfg.Format == labelformat.FormatMatrix {
		err := attempt(func() error { return renderMatrix(surface, payload, cfg) })
		if err == nil {
			result.Success = true
			result.Method = labelformat.MethodExact
			return result
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("matrix pattern failed: %v", err))
		return g.textOnly(surface, payload, cfg, result)
	}

	if g.codec == nil {
		result.Warnings = append(result.Warnings, "no exact codec configured")
	} else {
		err := attempt(func() error { return g.codec.Render(surface, payload, cfg) })
		if err == nil {
			result.Success = true
			result.Method = labelformat.MethodExact
			return result
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("exact rendering (%s codec) failed: %v", g.codec.Name(), err))
	}

	err := attempt(func() error { return renderSimplified(surface, payload, cfg) })
	if err == nil {
		result.Success = true
		result.Method = labelformat.MethodSimplified
		result.Warnings = append(result.Warnings,
			"simplified pattern is a visual approximation and cannot be scanned")
		return result
	}
	result.Warnings = append(result.Warnings, fmt.Sprintf("simplified rendering failed: %v", err))

	return g.textOnly(surface, payload, cfg, result)
}

// textOnly is the terminal tier. Success is false only when even text
// drawing is refused.
func (g *Generator) textOnly(surface Surface, payload string, cfg labelformat.BarcodeConfig, result labelformat.GenerationResult) labelformat.GenerationResult {
	result.Method = labelformat.MethodTextOnly
	if err := attempt(func() error { return renderTextOnly(surface, payload, cfg) }); err != nil {
		result.Success = false
		result.Warnings = append(result.Warnings, fmt.Sprintf("text-only rendering failed: %v", err))
		return result
	}
	result.Success = true
	result.Warnings = append(result.Warnings, "rendered as text only; label is not machine-readable")
	return result
}

// attempt runs one tier, converting panics into errors so nothing
// propagates to the caller.
func attempt(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering panic: %v", r)
		}
	}()
	return fn()
}

// Package render draws barcode labels onto a raster surface, degrading
// through rendering tiers so generation always produces something.
package render

import (
	"errors"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
)

// ErrNoContext reports a surface with no usable drawing context
var ErrNoContext = errors.New("render: no drawing context available")

// Surface is the minimal drawing capability the engine needs. The
// caller owns the surface; all methods mutate it in place. A surface
// may refuse an operation by returning an error, which drives the tier
// fallback in Generator.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.Color) error
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color) error
	MeasureString(s string, fontSize float64) (w, h float64, err error)
	DrawString(s string, x, y, fontSize float64, c color.Color) error
	DrawImage(img image.Image, x, y int) error
}

// Canvas is the gg-backed Surface used by the HTTP server and CLI
type Canvas struct {
	ctx      *gg.Context
	width    int
	height   int
	fontSize float64
}

// NewCanvas creates a white canvas of the given pixel dimensions
func NewCanvas(width, height int) *Canvas {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(color.White)
	ctx.Clear()

	return &Canvas{ctx: ctx, width: width, height: height}
}

// Size returns the canvas dimensions in pixels
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Image returns the rendered raster
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// FillRect fills an axis-aligned rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) error {
	c.ctx.SetColor(col)
	c.ctx.DrawRectangle(x, y, w, h)
	c.ctx.Fill()
	return nil
}

// StrokeRect outlines an axis-aligned rectangle
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) error {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(lineWidth)
	c.ctx.DrawRectangle(x, y, w, h)
	c.ctx.Stroke()
	return nil
}

// MeasureString measures text at the given size
func (c *Canvas) MeasureString(s string, fontSize float64) (float64, float64, error) {
	c.loadFont(fontSize)
	w, h := c.ctx.MeasureString(s)
	return w, h, nil
}

// DrawString draws text with its baseline at y
func (c *Canvas) DrawString(s string, x, y, fontSize float64, col color.Color) error {
	c.loadFont(fontSize)
	c.ctx.SetColor(col)
	c.ctx.DrawString(s, x, y)
	return nil
}

// DrawImage draws img with its top-left corner at (x, y)
func (c *Canvas) DrawImage(img image.Image, x, y int) error {
	c.ctx.DrawImage(img, x, y)
	return nil
}

// loadFont loads a scalable font face at the requested size, keeping
// gg's built-in bitmap face when no system font is available.
func (c *Canvas) loadFont(size float64) {
	if size == c.fontSize {
		return
	}

	systemFonts := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}
	for _, font := range systemFonts {
		if _, err := os.Stat(font); err == nil {
			if err := c.ctx.LoadFontFace(font, size); err == nil {
				c.fontSize = size
				return
			}
		}
	}

	// gg falls back to its fixed-size bitmap face
	c.fontSize = size
}

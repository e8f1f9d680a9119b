package api

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/warelabel/label-engine/internal/metrics"
	"github.com/warelabel/label-engine/internal/render"
	"github.com/warelabel/label-engine/pkg/labelformat"
)

// GenerateRequest is the body of POST /generate and the websocket
// preview event. Either a preset name or an explicit config is
// required; config wins when both are present.
type GenerateRequest struct {
	Payload string                     `json:"payload" binding:"required"`
	Preset  string                     `json:"preset,omitempty"`
	Config  *labelformat.BarcodeConfig `json:"config,omitempty"`
	Scale   int                        `json:"scale,omitempty"`
}

// resolveConfig picks the effective barcode config for a request
func (r *GenerateRequest) resolveConfig() (labelformat.BarcodeConfig, bool) {
	if r.Config != nil {
		return *r.Config, true
	}
	if r.Preset != "" {
		return labelformat.Preset(r.Preset)
	}
	return labelformat.PackingSlipConfig(), true
}

// handleGenerate renders a label and returns it as PNG, or as a JSON
// envelope when ?format=json is set.
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "payload is required"})
		return
	}

	cfg, ok := req.resolveConfig()
	if !ok {
		c.JSON(400, gin.H{"error": "unknown preset: " + req.Preset})
		return
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		c.JSON(400, gin.H{"error": "config width and height must be positive"})
		return
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height)

	start := time.Now()
	result := s.generator.Generate(canvas, req.Payload, cfg)
	metrics.RecordGeneration(string(result.Method), result.Success, time.Since(start))

	img := canvas.Image()
	if req.Scale > 1 {
		scale := req.Scale
		if scale > s.cfg.Engine.MaxScale {
			scale = s.cfg.Engine.MaxScale
		}
		img = imaging.Resize(img, cfg.Width*scale, cfg.Height*scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(500, gin.H{"error": "failed to encode image"})
		return
	}

	if c.Query("format") == "json" {
		c.JSON(200, gin.H{
			"result":    result,
			"image_png": base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
		return
	}

	c.Header("X-Generation-Method", string(result.Method))
	for _, w := range result.Warnings {
		c.Writer.Header().Add("X-Generation-Warning", w)
	}
	c.Data(200, "image/png", buf.Bytes())
}

// handleReadability runs the advisory readability scorer
func (s *Server) handleReadability(c *gin.Context) {
	var req struct {
		Payload string                     `json:"payload" binding:"required"`
		Preset  string                     `json:"preset,omitempty"`
		Config  *labelformat.BarcodeConfig `json:"config,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "payload is required"})
		return
	}

	gr := GenerateRequest{Payload: req.Payload, Preset: req.Preset, Config: req.Config}
	cfg, ok := gr.resolveConfig()
	if !ok {
		c.JSON(400, gin.H{"error": "unknown preset: " + req.Preset})
		return
	}

	result := labelformat.TestReadability(cfg, req.Payload)
	metrics.ReadabilityScore.Observe(float64(result.Score))

	c.JSON(200, result)
}

// handleValidate checks the PREFIX-ORDER-ITEM identifier format
func (s *Server) handleValidate(c *gin.Context) {
	var req struct {
		Payload string `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "payload is required"})
		return
	}

	c.JSON(200, gin.H{"valid": labelformat.ValidateBarcode(req.Payload)})
}

// handleOptimize shortens a barcode triple to fit a maximum length
func (s *Server) handleOptimize(c *gin.Context) {
	var req struct {
		Prefix string `json:"prefix" binding:"required"`
		Order  string `json:"order" binding:"required"`
		Item   string `json:"item" binding:"required"`
		MaxLen int    `json:"max_len"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "prefix, order and item are required"})
		return
	}
	if req.MaxLen <= 0 {
		req.MaxLen = 24
	}

	barcode := labelformat.OptimizeBarcodeData(req.Prefix, req.Order, req.Item, req.MaxLen)
	c.JSON(200, gin.H{
		"barcode": barcode,
		"valid":   labelformat.ValidateBarcode(barcode),
	})
}

// handleOptimizeFields shortens all display fields of a label
func (s *Server) handleOptimizeFields(c *gin.Context) {
	var req struct {
		Customer string                   `json:"customer"`
		Type     string                   `json:"type"`
		Color    string                   `json:"color"`
		Date     string                   `json:"date"`
		Upgrades string                   `json:"upgrades"`
		Barcode  string                   `json:"barcode"`
		Limits   *labelformat.FieldLimits `json:"limits,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}

	limits := labelformat.DefaultFieldLimits()
	if req.Limits != nil {
		limits = *req.Limits
	}

	info := labelformat.OptimizeLabelInfo(req.Customer, req.Type, req.Color, req.Date, req.Upgrades, req.Barcode, limits)
	c.JSON(200, info)
}

// handleGetPresets returns the named configuration presets
func (s *Server) handleGetPresets(c *gin.Context) {
	presets := make(map[string]labelformat.BarcodeConfig)
	for _, name := range labelformat.PresetNames() {
		cfg, _ := labelformat.Preset(name)
		presets[name] = cfg
	}

	c.JSON(200, gin.H{"presets": presets})
}

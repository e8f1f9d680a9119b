package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/warelabel/label-engine/internal/render"
	"github.com/warelabel/label-engine/pkg/labelformat"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func main() {
	var (
		preset   string
		out      string
		width    int
		height   int
		fontSize int
		margin   int
		noText   bool
		matrix   bool
		codec    string
		check    bool
	)

	flag.StringVar(&preset, "preset", "", "Config preset: "+strings.Join(labelformat.PresetNames(), ", "))
	flag.StringVar(&out, "o", "label.png", "Output PNG path")
	flag.IntVar(&width, "width", 200, "Label width in pixels")
	flag.IntVar(&height, "height", 60, "Label height in pixels")
	flag.IntVar(&fontSize, "font-size", 10, "Text size")
	flag.IntVar(&margin, "margin", 5, "Quiet zone in pixels")
	flag.BoolVar(&noText, "no-text", false, "Hide the human-readable text")
	flag.BoolVar(&matrix, "matrix", false, "Draw the two-dimensional placeholder instead of bars")
	flag.StringVar(&codec, "codec", "pattern", "Exact-tier codec: pattern or image")
	flag.BoolVar(&check, "check", false, "Only print the readability report, render nothing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: label-cli [flags] <payload>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	payload := flag.Arg(0)

	cfg := labelformat.BarcodeConfig{
		Width:    width,
		Height:   height,
		FontSize: fontSize,
		Margin:   margin,
		ShowText: !noText,
		Format:   labelformat.FormatLinear,
	}
	if preset != "" {
		p, ok := labelformat.Preset(preset)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown preset %q\n", preset)
			os.Exit(1)
		}
		cfg = p
	}
	if matrix {
		cfg.Format = labelformat.FormatMatrix
	}

	printReadability(cfg, payload)

	if check {
		return
	}

	var codecImpl render.Codec = render.PatternCodec{}
	if codec == "image" {
		codecImpl = render.ImageCodec{}
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	gen := render.NewGenerator(render.WithCodec(codecImpl))
	result := gen.Generate(canvas, payload, cfg)

	printResult(result)

	if !result.Success {
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create %s: %v\n", out, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, canvas.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot write PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(dimStyle.Render("wrote " + out))
}

func printReadability(cfg labelformat.BarcodeConfig, payload string) {
	r := labelformat.TestReadability(cfg, payload)

	style := goodStyle
	switch {
	case r.Score < 50:
		style = badStyle
	case r.Score < 80:
		style = warnStyle
	}

	fmt.Println(titleStyle.Render("Readability"), style.Render(fmt.Sprintf("%d/100", r.Score)))
	for _, w := range r.Warnings {
		fmt.Println(warnStyle.Render("  ! " + w))
	}
	for _, rec := range r.Recommendations {
		fmt.Println(dimStyle.Render("  > " + rec))
	}

	if !labelformat.ValidateBarcode(payload) {
		fmt.Println(warnStyle.Render("  ! payload is not a PREFIX-ORDER-ITEM identifier"))
	}
}

func printResult(result labelformat.GenerationResult) {
	if result.Success {
		fmt.Println(titleStyle.Render("Method"), string(result.Method))
	} else {
		fmt.Println(badStyle.Render("generation failed"))
	}
	for _, w := range result.Warnings {
		fmt.Println(warnStyle.Render("  ! " + w))
	}
}

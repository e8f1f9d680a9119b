package labelformat

import "testing"

func TestTestReadability_GoodConfig(t *testing.T) {
	cfg := BarcodeConfig{Width: 200, Height: 60, FontSize: 10, Margin: 5, ShowText: true}
	result := TestReadability(cfg, "TEST-123-456")

	if result.Score <= 80 {
		t.Errorf("Expected score above 80 for good config, got %d", result.Score)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
}

func TestTestReadability_BadConfig(t *testing.T) {
	cfg := BarcodeConfig{Width: 80, Height: 25, FontSize: 5, Margin: 2, ShowText: true}
	result := TestReadability(cfg, "TEST-123-456")

	if result.Score >= 70 {
		t.Errorf("Expected score below 70 for cramped config, got %d", result.Score)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected at least one warning")
	}
	if len(result.Recommendations) == 0 {
		t.Error("Expected at least one recommendation")
	}
}

func TestTestReadability_ScoreNeverNegative(t *testing.T) {
	cfg := BarcodeConfig{Width: 10, Height: 5, FontSize: 1, Margin: 4, ShowText: true}
	result := TestReadability(cfg, "A-VERY-LONG-PAYLOAD-THAT-WILL-NEVER-SCAN")

	if result.Score < 0 {
		t.Errorf("Score must be clamped at 0, got %d", result.Score)
	}
}

func TestTestReadability_EmptyPayload(t *testing.T) {
	cfg := BarcodeConfig{Width: 200, Height: 60, FontSize: 10, Margin: 5, ShowText: true}
	result := TestReadability(cfg, "")

	if result.Score != 100 {
		t.Errorf("Expected 100 for empty payload on good geometry, got %d", result.Score)
	}
}

func TestTestReadability_LongPayloadPenalty(t *testing.T) {
	cfg := BarcodeConfig{Width: 400, Height: 100, FontSize: 10, Margin: 5, ShowText: true}
	short := TestReadability(cfg, "SHORT")
	long := TestReadability(cfg, "THIS-PAYLOAD-IS-OVER-TWENTY-CHARS")

	if long.Score >= short.Score {
		t.Errorf("Expected long payload to score lower: %d vs %d", long.Score, short.Score)
	}
}

func TestRecommendedConfig_Standard(t *testing.T) {
	cfg, notes := RecommendedConfig(250, 80)

	if !cfg.ShowText {
		t.Error("Expected text enabled for standard label")
	}
	if cfg.FontSize != 10 || cfg.Margin != 5 {
		t.Errorf("Expected default font/margin, got %d/%d", cfg.FontSize, cfg.Margin)
	}
	if len(notes) != 0 {
		t.Errorf("Expected no notes for defaults, got %v", notes)
	}
}

func TestRecommendedConfig_Tiny(t *testing.T) {
	cfg, notes := RecommendedConfig(120, 35)

	if cfg.ShowText {
		t.Error("Expected text disabled for tiny label")
	}
	if cfg.Margin != 2 {
		t.Errorf("Expected 2px margin for tiny label, got %d", cfg.Margin)
	}
	if len(notes) == 0 {
		t.Error("Expected notes explaining non-default settings")
	}
}

func TestRecommendedConfig_Small(t *testing.T) {
	cfg, notes := RecommendedConfig(180, 55)

	if !cfg.ShowText {
		t.Error("Expected text enabled for small label")
	}
	if cfg.FontSize != 7 {
		t.Errorf("Expected font size 7 for small label, got %d", cfg.FontSize)
	}
	if len(notes) == 0 {
		t.Error("Expected a note for reduced font size")
	}
}

func TestPreset_KnownNames(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, ok := Preset(name)
		if !ok {
			t.Errorf("Expected preset %s to exist", name)
		}
		if cfg.Width == 0 || cfg.Height == 0 {
			t.Errorf("Preset %s has zero geometry", name)
		}
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, ok := Preset("giant-banner"); ok {
		t.Error("Expected unknown preset to report false")
	}
}

func TestPreset_CompactBottomDisablesText(t *testing.T) {
	cfg, _ := Preset(PresetCompactLabelBottom)
	if cfg.ShowText {
		t.Error("Expected compact-label-bottom to disable text")
	}
}

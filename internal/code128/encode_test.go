package code128

import "testing"

func TestEncode_StartAndStop(t *testing.T) {
	symbols, _ := Encode("ORD-123")

	if symbols[0] != StartSymbol {
		t.Errorf("Expected sequence to start with %d, got %d", StartSymbol, symbols[0])
	}
	if symbols[len(symbols)-1] != StopSymbol {
		t.Errorf("Expected sequence to end with %d, got %d", StopSymbol, symbols[len(symbols)-1])
	}
}

func TestEncode_ChecksumIdentity(t *testing.T) {
	payloads := []string{"", "A", "TEST-123-456", "O1A-ORDER123-ITEM456", "  spaces  ", "~~~"}

	for _, payload := range payloads {
		symbols, checksum := Encode(payload)

		sum := int(StartSymbol)
		for i, r := range []rune(payload) {
			value, _ := SymbolValue(r)
			sum += int(value) * (i + 1)
		}
		expected := Symbol(sum % 103)

		if checksum != expected {
			t.Errorf("Encode(%q): checksum %d, expected %d", payload, checksum, expected)
		}
		if symbols[len(symbols)-2] != checksum {
			t.Errorf("Encode(%q): checksum symbol not before stop", payload)
		}
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	symbols, checksum := Encode("")

	// START, checksum, STOP
	if len(symbols) != 3 {
		t.Fatalf("Expected 3 symbols for empty payload, got %d", len(symbols))
	}
	if checksum != Symbol(int(StartSymbol)%103) {
		t.Errorf("Expected checksum %d, got %d", int(StartSymbol)%103, checksum)
	}
}

func TestEncode_UnsupportedCharactersSubstituted(t *testing.T) {
	symbols, _ := Encode("A\nB\tÜ")

	if len(symbols) != 5+3 {
		t.Fatalf("Expected 8 symbols, got %d", len(symbols))
	}
	for _, i := range []int{2, 4, 5} {
		if symbols[i] != SpaceSymbol {
			t.Errorf("Expected space symbol at position %d, got %d", i, symbols[i])
		}
	}
}

func TestEncode_DataSymbolOrder(t *testing.T) {
	symbols, _ := Encode("AB1")

	expected := []Symbol{'A' - ' ', 'B' - ' ', '1' - ' '}
	for i, want := range expected {
		if symbols[i+1] != want {
			t.Errorf("Data symbol %d: got %d, want %d", i, symbols[i+1], want)
		}
	}
}

func TestSymbolValue_Bounds(t *testing.T) {
	if v, ok := SymbolValue(' '); !ok || v != 0 {
		t.Errorf("Expected space to map to 0, got %d ok=%v", v, ok)
	}
	if v, ok := SymbolValue('~'); !ok || v != 94 {
		t.Errorf("Expected ~ to map to 94, got %d ok=%v", v, ok)
	}
	if _, ok := SymbolValue('\n'); ok {
		t.Error("Expected newline to be unsupported")
	}
	if _, ok := SymbolValue('Ü'); ok {
		t.Error("Expected non-ASCII rune to be unsupported")
	}
}

func TestUnsupportedRunes(t *testing.T) {
	got := UnsupportedRunes("AB\nC\t")
	if len(got) != 2 || got[0] != '\n' || got[1] != '\t' {
		t.Errorf("Expected [\\n \\t], got %q", string(got))
	}

	if UnsupportedRunes("PLAIN-ASCII-123") != nil {
		t.Error("Expected nil for fully supported payload")
	}
}

func TestPatterns_ConstantModuleSum(t *testing.T) {
	for i, p := range Patterns {
		sum := 0
		for _, w := range p {
			sum += w
		}
		if sum != SymbolModules {
			t.Errorf("Pattern %d sums to %d modules, expected %d", i, sum, SymbolModules)
		}
	}

	stop := 0
	for _, w := range StopPattern {
		stop += w
	}
	if stop != 13 {
		t.Errorf("Stop pattern sums to %d modules, expected 13", stop)
	}
}

func TestModules_StartsWithBarRuns(t *testing.T) {
	symbols, _ := Encode("X")
	runs := Modules(symbols)

	// START + 1 data + checksum at 6 runs each, stop at 7
	expected := 3*6 + 7
	if len(runs) != expected {
		t.Errorf("Expected %d runs, got %d", expected, len(runs))
	}
	for i, w := range runs {
		if w < 1 || w > 4 {
			t.Errorf("Run %d has width %d outside 1..4", i, w)
		}
	}
}

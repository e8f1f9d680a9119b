package code128

// Encode turns a payload into an ordered symbol sequence: start code,
// data symbols, checksum, stop code. Runes outside the supported
// alphanumeric subset are silently replaced with the space symbol, so
// Encode never fails; callers that care can pre-check the payload with
// UnsupportedRunes.
//
// The checksum is the Code 128 weighted sum: the start code's value
// plus each data symbol's value times its 1-based position, mod 103.
func Encode(payload string) (symbols []Symbol, checksum Symbol) {
	runes := []rune(payload)

	symbols = make([]Symbol, 0, len(runes)+3)
	symbols = append(symbols, StartSymbol)

	sum := int(StartSymbol)
	for i, r := range runes {
		value, _ := SymbolValue(r)
		sum += int(value) * (i + 1)
		symbols = append(symbols, value)
	}

	checksum = Symbol(sum % checksumMod)
	symbols = append(symbols, checksum, StopSymbol)

	return symbols, checksum
}

// UnsupportedRunes lists the payload runes that Encode will replace
// with the space symbol, in input order without deduplication.
func UnsupportedRunes(payload string) []rune {
	var unsupported []rune
	for _, r := range payload {
		if _, ok := SymbolValue(r); !ok {
			unsupported = append(unsupported, r)
		}
	}
	return unsupported
}

// Modules expands a symbol sequence into one flat run of bar/space
// module widths, starting with a bar. The stop symbol contributes its
// extra terminating bar.
func Modules(symbols []Symbol) []int {
	runs := make([]int, 0, len(symbols)*6+1)
	for _, s := range symbols {
		if s == StopSymbol {
			runs = append(runs, StopPattern[:]...)
			continue
		}
		runs = append(runs, Patterns[s][:]...)
	}
	return runs
}

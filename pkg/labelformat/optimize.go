package labelformat

import (
	"sort"
	"strings"
	"sync"
)

// Ellipsis marks truncated label text
const Ellipsis = "..."

// abbreviations maps common warehouse vocabulary to short label forms.
// Exact matches are replaced first; otherwise the longest key found
// inside the text is substituted.
var abbreviations = map[string]string{
	"Standard":      "Std",
	"Premium":       "Prem",
	"Deluxe":        "Dlx",
	"Extra Large":   "XL",
	"Large":         "L",
	"Medium":        "M",
	"Small":         "S",
	"Package":       "Pkg",
	"Assembly":      "Assy",
	"Upgrade":       "Upg",
	"Accessory":     "Acc",
	"Replacement":   "Repl",
	"International": "Intl",
	"Warehouse":     "WH",
	"Customer":      "Cust",
}

// OptimizeBarcodeData fits the PREFIX-ORDER-ITEM triple into maxLen
// characters. Shortening is staged: the full string is tried first,
// then the order number is collapsed to its first four and last three
// characters, then the item to its first and last three, and as a last
// resort the joined string is cut to maxLen with a trailing ellipsis.
func OptimizeBarcodeData(prefix, order, item string, maxLen int) string {
	full := prefix + "-" + order + "-" + item
	if len(full) <= maxLen {
		return full
	}

	if len(order) > 8 {
		order = order[:4] + order[len(order)-3:]
	}
	full = prefix + "-" + order + "-" + item
	if len(full) <= maxLen {
		return full
	}

	if len(item) > 6 {
		item = item[:3] + item[len(item)-3:]
	}
	full = prefix + "-" + order + "-" + item
	if len(full) <= maxLen {
		return full
	}

	return TruncateText(full, maxLen)
}

// TruncateText cuts text to maxLen characters, spending the final
// three on an ellipsis marker.
func TruncateText(text string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= len(Ellipsis) {
		return text[:maxLen]
	}
	return text[:maxLen-len(Ellipsis)] + Ellipsis
}

// AbbreviateText shortens text using the abbreviation table, falling
// back to truncation when no table entry applies or the abbreviated
// form is still too long.
func AbbreviateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	if abbr, ok := abbreviations[text]; ok && len(abbr) <= maxLen {
		return abbr
	}

	// Longer keys first so "Extra Large" wins over "Large"
	for _, key := range abbreviationKeys() {
		if strings.Contains(text, key) {
			replaced := strings.ReplaceAll(text, key, abbreviations[key])
			if len(replaced) <= maxLen {
				return replaced
			}
		}
	}

	return TruncateText(text, maxLen)
}

var (
	abbrKeysOnce sync.Once
	abbrKeys     []string
)

func abbreviationKeys() []string {
	abbrKeysOnce.Do(func() {
		for key := range abbreviations {
			abbrKeys = append(abbrKeys, key)
		}
		sort.Slice(abbrKeys, func(i, j int) bool {
			if len(abbrKeys[i]) != len(abbrKeys[j]) {
				return len(abbrKeys[i]) > len(abbrKeys[j])
			}
			return abbrKeys[i] < abbrKeys[j]
		})
	})
	return abbrKeys
}

// FieldLimits bounds each display field of an optimized label
type FieldLimits struct {
	Customer int `json:"customer"`
	Type     int `json:"type"`
	Color    int `json:"color"`
	Date     int `json:"date"`
	Upgrades int `json:"upgrades"`
	Barcode  int `json:"barcode"`
}

// DefaultFieldLimits fits the standard compact thermal label
func DefaultFieldLimits() FieldLimits {
	return FieldLimits{Customer: 18, Type: 12, Color: 10, Date: 10, Upgrades: 16, Barcode: 24}
}

// OptimizeLabelInfo shortens all display fields of a label to the
// given limits. Each field is optimized independently.
func OptimizeLabelInfo(customer, typ, color, date, upgrades, barcode string, limits FieldLimits) OptimizedLabelInfo {
	return OptimizedLabelInfo{
		Customer: AbbreviateText(customer, limits.Customer),
		Type:     AbbreviateText(typ, limits.Type),
		Color:    TruncateText(color, limits.Color),
		Date:     TruncateText(date, limits.Date),
		Upgrades: AbbreviateText(upgrades, limits.Upgrades),
		Barcode:  TruncateText(barcode, limits.Barcode),
	}
}

// ValidateBarcode reports whether s matches the PREFIX-ORDER-ITEM
// identifier format: exactly three dash-separated non-empty parts with
// a three-character prefix.
func ValidateBarcode(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return len(parts[0]) == 3
}

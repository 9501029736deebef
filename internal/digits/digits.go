// Package digits converts Persian and Arabic-Indic numerals to ASCII digits.
package digits

import "strings"

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

// Normalize maps Persian (۰–۹) and Arabic-Indic (٠–٩) digit runes to their
// ASCII equivalents. All other runes pass through unchanged, including
// thousands separators. Idempotent.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			return '0' + (r - arabicZero)
		default:
			return r
		}
	}, s)
}

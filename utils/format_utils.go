package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators for use in
// reminder messages, e.g. 150000 -> "150,000" and 1500.5 -> "1,500.50".
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return amountPrinter.Sprintf("%d", int64(amount))
	}
	return amountPrinter.Sprintf("%.2f", amount)
}

// ParseNumeric extracts a number from free-form spreadsheet text. Currency
// symbols, separators and whitespace are stripped; anything that still fails
// to parse becomes zero.
func ParseNumeric(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

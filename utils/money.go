package utils

import (
	"math"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nonAmount = regexp.MustCompile(`[^\d.]`)

// ParseAmount pulls a number out of a display string like "AED 15,000"
// by stripping everything except digits and '.'. The parse is
// locale-naive on purpose: it cannot tell thousands separators from
// decimal points, which matches how the display strings were built.
// Anything that still fails to parse contributes 0.
func ParseAmount(s string) float64 {
	cleaned := nonAmount.ReplaceAllString(s, "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a number with thousands separators, dropping
// the fraction when it is whole: 15000 -> "15,000", 1250.5 -> "1,250.50".
func FormatAmount(value float64) string {
	if value == math.Trunc(value) {
		return amountPrinter.Sprintf("%d", int64(value))
	}
	return amountPrinter.Sprintf("%.2f", value)
}

// FormatMoney prefixes a formatted amount with a currency code,
// e.g. "AED 15,000".
func FormatMoney(currency string, value float64) string {
	return currency + " " + FormatAmount(value)
}

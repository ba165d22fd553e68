// Package format renders amounts, durations and weights for display.
package format

import (
	"fmt"
	"math"
	"strings"
)

// CurrencySymbol is the display symbol for all monetary output.
const CurrencySymbol = "₹"

// Currency formats an amount with the currency symbol and Indian digit
// grouping (e.g. ₹12,34,567.89). Negative amounts keep the sign before the
// symbol.
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// Round to paise before splitting to avoid 0.999... artifacts.
	amount = math.Round(amount*100) / 100
	whole := int64(amount)
	fraction := int64(math.Round((amount - float64(whole)) * 100))
	if fraction == 100 {
		whole++
		fraction = 0
	}

	return fmt.Sprintf("%s%s%s.%02d", sign, CurrencySymbol, groupIndian(whole), fraction)
}

// groupIndian inserts commas in the 2,2,3 Indian pattern: the last three
// digits form one group, every two digits before that form another.
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}

// Percent formats a whole-number percentage value.
func Percent(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%.0f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

// Time renders a duration in minutes as "N minutes", "N hours" or "XhYm".
func Time(minutes float64) string {
	total := int(math.Round(minutes))
	hours := total / 60
	remaining := total % 60

	if hours == 0 {
		return fmt.Sprintf("%d minutes", remaining)
	}
	if remaining == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

// Weight renders grams as-is below 1kg and as kilograms above.
func Weight(grams float64) string {
	if grams >= 1000 {
		return fmt.Sprintf("%.2f kg", grams/1000)
	}
	return fmt.Sprintf("%g g", grams)
}

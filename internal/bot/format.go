package bot

import (
	"strconv"
	"strings"
)

// formatMoney renders an amount with thousands separators and the given
// number of decimals, e.g. 50000 -> "50,000.00".
func formatMoney(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest, so
// "asset_adjustment" renders as "Asset_adjustment".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// truncateNotes shortens notes to at most limit runes with a trailing
// ellipsis for list displays.
func truncateNotes(notes string, limit int) string {
	runes := []rune(notes)
	if len(runes) <= limit {
		return notes
	}
	return string(runes[:limit]) + "..."
}

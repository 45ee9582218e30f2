package load

import "strings"

func isValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func isValidRate(rate float64) bool {
	return rate >= 0
}

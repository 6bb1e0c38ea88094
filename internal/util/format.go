package util

import (
	"fmt"
)

// FormatCount renders n with comma separators, e.g. 12345 -> "12,345"
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}
	return string(result)
}

// FormatPercentage renders a percentage with one decimal place
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Percentage returns part*100/total, or 0 when total is 0
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) * 100.0 / float64(total)
}

// FormatTimes renders an occurrence count such as "3 times"
func FormatTimes(n int) string {
	return fmt.Sprintf("%s times", FormatCount(n))
}

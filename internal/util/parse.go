package util

import "strconv"

// ParseLeadingInt extracts the integer prefix from values like
// "3 horas" or "90 dias". Returns 0 when the string has no digit
// prefix.
func ParseLeadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

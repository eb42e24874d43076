package utils

import "strings"

// MaskPhone hides all but the last four digits of a phone number so results
// and logs never echo a full number.
func MaskPhone(phone string) string {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return strings.Repeat("X", len(digits))
	}
	return strings.Repeat("X", len(digits)-4) + string(digits[len(digits)-4:])
}

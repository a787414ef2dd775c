package validators

import (
	"regexp"
	"strings"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
	emailRe = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// NormalizePhone strips spaces, dashes and slashes so that the same number
// always matches the same client row.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '/', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(NormalizePhone(phone))
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

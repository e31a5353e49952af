package services

import (
	"strconv"
)

// parsePositiveIntegerAmount accepts only unsigned ASCII digit strings that
// evaluate to a strictly positive integer. No sign, no decimal point, not
// empty. Leading zeros are tolerated ("007" is 7).
func parsePositiveIntegerAmount(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// isValidAccountID allows ASCII letters, digits and the characters '-', '.'
// and '@'. Empty identifiers are invalid.
func isValidAccountID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= 'a' && ch <= 'z':
		case ch >= '0' && ch <= '9':
		case ch == '-' || ch == '.' || ch == '@':
		default:
			return false
		}
	}
	return true
}

package validate

import (
	"regexp"
	"strings"
)

var reCond = regexp.MustCompile(`^(Good|Like New|Excellent)$`)

// Name validates a listing name (1-200 chars after trimming).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 200
}

// Brand validates a brand name (1-100 chars).
func Brand(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 100
}

// Price accepts strictly positive integer prices.
func Price(n int) bool { return n > 0 }

// Condition validates the allowed condition enums.
func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCond.MatchString(s)
}

// Description requires at least 10 characters.
func Description(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) >= 10
}

// Images requires between 1 and 6 non-empty URLs.
func Images(urls []string) bool {
	if len(urls) < 1 || len(urls) > 6 {
		return false
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			return false
		}
	}
	return true
}

// Storage validates the storage label (1-50 chars).
func Storage(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 50
}

// Battery validates the optional battery label (max 50 chars).
func Battery(s string) bool { return len(s) <= 50 }

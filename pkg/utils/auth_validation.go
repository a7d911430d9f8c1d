package utils

import (
	"regexp"
	"strings"
)

const emailRegexPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

var emailRegex = regexp.MustCompile(emailRegexPattern)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidateUsername checks the `@`-prefixed handle convention.
func ValidateUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < 2 || !strings.HasPrefix(username, "@") {
		return false
	}
	return !strings.ContainsAny(username[1:], " @")
}

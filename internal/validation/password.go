package validation

import (
	"regexp"
	"strings"
)

// forbiddenRunes may never appear in a password even inside the printable range.
const forbiddenRunes = "'\"`;\\"

var forbiddenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE)\b`),
	regexp.MustCompile(`(?i)\bUNION\b|\bOR\b.*=.*\b|\bAND\b.*=.*\b`),
	regexp.MustCompile(`^\s+$`),
}

// CheckPasswordPolicy enforces the registration password rules on a password
// that already meets the length floor. Characters must come from printable
// ASCII minus quotes, backtick, semicolon and backslash; SQL-shaped content is
// refused; at least one letter and one digit are required. Queries are always
// parameterized, so this is a second line of defense only.
func CheckPasswordPolicy(password string) error {
	for _, r := range password {
		if r < 0x20 || r > 0x7e || strings.ContainsRune(forbiddenRunes, r) {
			return fail(ForbiddenPattern, msgPasswordForbidden)
		}
	}
	for _, pattern := range forbiddenPatterns {
		if pattern.MatchString(password) {
			return fail(ForbiddenPattern, msgPasswordForbidden)
		}
	}
	if !strings.ContainsFunc(password, isASCIILetter) || !strings.ContainsFunc(password, isASCIIDigit) {
		return fail(WeakPassword, msgPasswordLetterDigit)
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

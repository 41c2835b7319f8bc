package usecase

import (
	"strings"
	"unicode"
)

// ValidateEmail checks the address has a local@domain.tld shape:
// exactly one @, no whitespace, and a dot inside the domain part.
func ValidateEmail(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

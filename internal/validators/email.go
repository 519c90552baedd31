package validators

import "regexp"

// local@domain.tld shape: no whitespace, no second @, a dot in the domain.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

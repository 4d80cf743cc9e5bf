package domain

import (
	"regexp"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

var (
	// local-part@domain with a TLD of at least two letters.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// "+" followed by 10 to 15 digits, nothing else.
	phonePattern = regexp.MustCompile(`^\+[0-9]{10,15}$`)
)

// Email is a syntactically validated email address.
type Email string

// ParseEmail validates raw against the email grammar.
func ParseEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return "", apperrors.NewInvalidFormat("email", raw)
	}
	return Email(raw), nil
}

func (e Email) String() string {
	return string(e)
}

// Phone is a validated international phone number.
type Phone string

// ParsePhone validates raw against the phone grammar. Spaces, dashes
// and parentheses are not tolerated.
func ParsePhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return "", apperrors.NewInvalidFormat("phone", raw)
	}
	return Phone(raw), nil
}

func (p Phone) String() string {
	return string(p)
}

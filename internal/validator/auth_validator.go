package validator

import (
	"net/mail"
	"strings"
)

// ValidateLogin rejects obviously malformed sign-in input before hitting the DB.
func ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return invalid("email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("invalid email")
	}
	return nil
}

package domain

import "strings"

type User struct {
	Email       string
	DisplayName string
}

// NormalizeEmail is applied to every email before it is used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package password holds the registration password policy and the hashing
// used to store credentials.
package password

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Passwords the policy refuses outright, compared case-insensitively.
var commonPasswords = []string{
	"password123", "qwerty123", "12345678", "password1", "admin123",
	"letmein123", "welcome123", "monkey123", "football123", "abc123",
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Validate checks a candidate password against the account's name and email
// and returns every violated rule in order. An empty result means the
// password is acceptable. All rules are evaluated; nothing short-circuits.
func Validate(candidate, name, email string) []string {
	var violations []string

	if len(candidate) < 8 {
		violations = append(violations, "Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialChars, r) {
			hasSpecial = true
		}
	}
	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, fmt.Sprintf("Password must contain at least one special character (%s)", specialChars))
	}

	lower := strings.ToLower(candidate)

	for _, common := range commonPasswords {
		if lower == common {
			violations = append(violations, "This password is too common. Please choose a more unique password")
			break
		}
	}

	if isSequential(lower) {
		violations = append(violations, "Password contains sequential patterns (e.g., abcd1234). Please choose a more random combination")
	}

	if strings.Contains(lower, strings.ToLower(name)) ||
		strings.Contains(lower, strings.ToLower(localPart(email))) {
		violations = append(violations, "Password should not contain your name or email")
	}

	return violations
}

// isSequential reports whether the lowercased string contains any 4-character
// contiguous run of the alphabet or the digits.
func isSequential(lower string) bool {
	const runLen = 4
	for _, seq := range []string{"abcdefghijklmnopqrstuvwxyz", "0123456789"} {
		for i := 0; i+runLen <= len(seq); i++ {
			if strings.Contains(lower, seq[i:i+runLen]) {
				return true
			}
		}
	}
	return false
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// Hash produces a bcrypt hash of the password. Stored credentials are never
// kept in plaintext.
func Hash(candidate string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(candidate), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check compares a candidate against a stored hash in constant time.
func Check(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

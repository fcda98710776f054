package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reNumber = regexp.MustCompile(`[0-9]`)
)

func isAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reNumber.MatchString(s)
}

// ValidatePasswordStrength: minimal 8 karakter, huruf + angka.
func ValidatePasswordStrength(pw string) error {
	if len(pw) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !isAlphaNumeric(pw) {
		return errors.New("password must contain letters and numbers")
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}

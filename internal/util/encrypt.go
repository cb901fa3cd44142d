package util

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

func HashToken(token string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyToken(token, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(token))
}

// TokensEqual compares two secrets in constant time.
func TokensEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

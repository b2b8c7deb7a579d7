package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a plaintext secret using bcrypt.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(secret),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// VerifySecret compares a plaintext secret with the stored hash.
func VerifySecret(hash string, secret string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(secret),
	)
}

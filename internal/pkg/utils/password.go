package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/labstack/gommon/random"
)

const saltLength = 16

// HashPassword derives a salted sha256 hash for a new password and returns
// hash and salt, both hex/alphanumeric strings safe to store.
func HashPassword(plain string) (hash, salt string) {
	salt = random.String(saltLength)
	return hashWithSalt(plain, salt), salt
}

// VerifyPassword checks a login attempt against the stored hash and salt.
func VerifyPassword(plain, salt, storedHash string) bool {
	computed := hashWithSalt(plain, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

func hashWithSalt(plain, salt string) string {
	sum := sha256.Sum256([]byte(salt + plain))
	return hex.EncodeToString(sum[:])
}

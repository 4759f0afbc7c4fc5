package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	hashAlgorithm = "scrypt"
	keyLength     = 64
	saltLength    = 16

	scryptN = 32768
	scryptR = 8
	scryptP = 1

	// MinPasswordLength is enforced on register and password change.
	MinPasswordLength = 8
)

var ErrPasswordTooShort = fmt.Errorf("la contraseña debe tener al menos %d caracteres", MinPasswordLength)

// HashPassword derives a scrypt hash encoded as "scrypt$<salt>$<digest>"
// with hex-encoded salt and digest.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hashAlgorithm + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches the stored hash. Any
// malformed stored value verifies as false, never as an error.
func VerifyPassword(password, storedHash string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 3 || parts[0] != hashAlgorithm || parts[1] == "" || parts[2] == "" {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	digest, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(digest))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(digest, key) == 1
}

// NewResetToken returns a random hex token for password reset links.
func NewResetToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", errors.New("failed to generate reset token")
	}
	return hex.EncodeToString(token), nil
}

package gateway

import (
	"crypto/sha1"
	"encoding/hex"
)

// PasswordDigest returns the lowercase hex SHA-1 of password.
// The user service only accepts credentials in this form; it is unsalted and weak,
// so it must not be used for anything but talking to that service.
func PasswordDigest(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

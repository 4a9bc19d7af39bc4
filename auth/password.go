package auth

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"

	"notable/model"
)

// PBKDF2 parameters. The salt is regenerated on every password write, so
// a digest is never reusable across password changes.
const (
	saltLength     = 16
	hashIterations = 10000
	hashKeyLength  = 64
)

// GenerateSalt returns a fresh base64-encoded 16 byte salt.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// HashPassword derives a base64 digest from the plaintext and the stored
// base64 salt using PBKDF2-SHA1.
//
// When salt or plaintext is empty the plaintext passes through unchanged.
// Records written before salting existed rely on this, so it is kept as
// is rather than turned into an error. See DESIGN.md.
func HashPassword(plaintext, salt string) string {
	if salt == "" || plaintext == "" {
		return plaintext
	}
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		rawSalt = []byte(salt)
	}
	key := pbkdf2.Key([]byte(plaintext), rawSalt, hashIterations, hashKeyLength, sha1.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Authenticate recomputes the digest with the user's stored salt and
// compares it against the stored digest.
func Authenticate(user *model.User, plaintext string) bool {
	digest := HashPassword(plaintext, user.Salt)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(user.Password)) == 1
}

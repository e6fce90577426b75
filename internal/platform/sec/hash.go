// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// # Password Hashing Parameters

const (
	// pbkdf2Iterations is fixed so digests stay reproducible across releases.
	pbkdf2Iterations = 10000

	// pbkdf2KeyLength is the derived key size in bytes (256 hex characters).
	pbkdf2KeyLength = 128

	// SaltLength is the byte length of a freshly generated per-user salt.
	SaltLength = 16
)

// HashPassword derives a hex-encoded PBKDF2-HMAC-SHA512 digest from a
// plain-text password and a per-user salt.
//
// The result is a pure function of (password, salt). Verification works by
// recomputing the digest, see [VerifyPassword].
func HashPassword(plainTextPassword, salt string) string {
	derived := pbkdf2.Key([]byte(plainTextPassword), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return hex.EncodeToString(derived)
}

// VerifyPassword recomputes the digest and compares it in constant time.
func VerifyPassword(plainTextPassword, salt, storedHash string) bool {
	computed := HashPassword(plainTextPassword, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// GenerateSalt returns [SaltLength] random bytes from the OS CSPRNG, hex encoded.
func GenerateSalt() (string, error) {
	buffer := make([]byte, SaltLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("auth: failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}

package aesgcm

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a 32-byte AES-256-GCM key from input keying material
// using HKDF-SHA-512 (RFC 5869).
//
// Parameters:
//   - secret: the input key material (e.g., a shared secret from a key
//     exchange); must not be a low-entropy password
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context string for domain separation, so the same secret can
//     safely key independent uses
func DeriveKey(secret, salt, info []byte) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, KeySize)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

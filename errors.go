package aesgcm

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeySize is returned by New when the key is not exactly
	// 32 bytes.
	ErrInvalidKeySize = errors.New("aesgcm: invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("aesgcm: invalid nonce size")

	// ErrInvalidTagSize is returned by OpenDetached when the tag is not
	// exactly 16 bytes.
	ErrInvalidTagSize = errors.New("aesgcm: invalid tag size")

	// ErrCiphertextTooShort is returned by Open when the ciphertext is
	// shorter than the authentication tag.
	ErrCiphertextTooShort = errors.New("aesgcm: ciphertext too short")

	// ErrAuthenticationFailed is returned when the authentication tag does
	// not match the ciphertext and associated data. The message was
	// tampered with, or key, nonce or associated data are wrong. Callers
	// must reject the ciphertext; no plaintext is ever returned alongside
	// this error.
	ErrAuthenticationFailed = errors.New("aesgcm: message authentication failed")
)

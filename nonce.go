package aesgcm

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used by NewNonce. It can be overridden
// in tests within this package.
var randReader io.Reader = rand.Reader

// NewNonce returns a fresh random 12-byte nonce from the system's secure
// random source. Random nonces make accidental reuse vanishingly unlikely
// for realistic message volumes; callers encrypting more than about 2^32
// messages under one key should rotate keys or switch to a counter scheme.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}

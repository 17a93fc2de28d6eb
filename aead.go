package aesgcm

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/vaultsandbox/aesgcm-go/internal/aes"
)

// AEAD is an AES-256-GCM instance bound to a single key. It implements the
// cipher.AEAD interface.
//
// The round-key schedule and the GHASH subkey are derived once in New and
// read-only afterwards, so one instance may be shared across goroutines;
// each call supplies its own nonce.
type AEAD struct {
	block *aes.Cipher
	// h is the hash subkey: the encryption of the all-zero block.
	h [BlockSize]byte
}

var _ cipher.AEAD = (*AEAD)(nil)

// New returns an AEAD keyed with the given 32-byte key.
func New(key []byte) (*AEAD, error) {
	block, err := aes.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	a := &AEAD{block: block}
	a.block.Encrypt(a.h[:], a.h[:])
	return a, nil
}

// NonceSize returns the required nonce length in bytes.
func (a *AEAD) NonceSize() int {
	return NonceSize
}

// Overhead returns the difference between ciphertext and plaintext lengths.
func (a *AEAD) Overhead() int {
	return TagSize
}

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the ciphertext followed by the 16-byte tag to dst, returning
// the updated slice. The nonce must be 12 bytes and unique for all time
// under this key.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("aesgcm: incorrect nonce length given to Seal")
	}
	if uint64(len(plaintext)) > maxPlaintextSize {
		panic("aesgcm: message too large for GCM")
	}

	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)
	a.seal(out, nonce, plaintext, additionalData)
	return ret
}

// Open authenticates ciphertext (which carries the tag in its final 16
// bytes) and additionalData, and on success appends the decrypted plaintext
// to dst. The tag is verified in constant time before any decryption; a
// mismatch yields ErrAuthenticationFailed and no plaintext.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("aesgcm: incorrect nonce length given to Open")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	text := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]

	return a.open(dst, nonce, text, tag, additionalData)
}

// SealDetached encrypts and authenticates plaintext and authenticates
// additionalData, returning the ciphertext and the 16-byte tag separately.
func (a *AEAD) SealDetached(nonce, plaintext, additionalData []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}
	if uint64(len(plaintext)) > maxPlaintextSize {
		return nil, nil, fmt.Errorf("aesgcm: plaintext too large: %d bytes", len(plaintext))
	}

	out := make([]byte, len(plaintext)+TagSize)
	a.seal(out, nonce, plaintext, additionalData)
	return out[:len(plaintext)], out[len(plaintext):], nil
}

// OpenDetached authenticates ciphertext and additionalData against the
// detached 16-byte tag and returns the plaintext. Tag verification happens
// in constant time and strictly before decryption.
func (a *AEAD) OpenDetached(nonce, ciphertext, tag, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidTagSize, len(tag), TagSize)
	}

	return a.open(nil, nonce, ciphertext, tag, additionalData)
}

// Wipe overwrites the round-key schedule and the hash subkey with zeros.
// The instance must not be used afterwards.
func (a *AEAD) Wipe() {
	a.block.Wipe()
	for i := range a.h {
		a.h[i] = 0
	}
}

// seal writes ciphertext followed by the tag into out, which must hold
// len(plaintext)+TagSize bytes.
func (a *AEAD) seal(out, nonce, plaintext, additionalData []byte) {
	counter := initialCounterBlock(nonce)

	var tagMask [BlockSize]byte
	a.block.Encrypt(tagMask[:], counter[:])

	inc32(&counter)
	a.xorKeyStream(out[:len(plaintext)], plaintext, &counter)

	tag := a.authTag(additionalData, out[:len(plaintext)], &tagMask)
	copy(out[len(plaintext):], tag[:])
}

// open verifies tag over (additionalData, ciphertext) and, only if it
// matches, decrypts ciphertext and appends the plaintext to dst.
func (a *AEAD) open(dst, nonce, ciphertext, tag, additionalData []byte) ([]byte, error) {
	if uint64(len(ciphertext)) > maxPlaintextSize {
		return nil, ErrAuthenticationFailed
	}

	counter := initialCounterBlock(nonce)

	var tagMask [BlockSize]byte
	a.block.Encrypt(tagMask[:], counter[:])

	expected := a.authTag(additionalData, ciphertext, &tagMask)
	if subtle.ConstantTimeCompare(tag, expected[:]) != 1 {
		return nil, ErrAuthenticationFailed
	}

	ret, out := sliceForAppend(dst, len(ciphertext))
	inc32(&counter)
	a.xorKeyStream(out, ciphertext, &counter)
	return ret, nil
}

// sliceForAppend extends the input slice to accommodate n more bytes.
// Returns the extended slice and the n-byte slice to write to.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// Package aesgcm implements AES-256 in Galois/Counter Mode from first
// principles: the FIPS-197 block cipher, the counter-mode keystream and the
// GF(2^128) GHASH authenticator, composed into an AEAD that is
// interoperable with NIST SP 800-38D and reproduces the standard's test
// vectors exactly.
//
// # Construction
//
// The 256-bit key is expanded once into a round-key schedule. Each Seal or
// Open call derives its keystream by encrypting successive counter blocks
// built from the caller's 12-byte nonce, and authenticates the associated
// data and ciphertext with GHASH under a subkey derived from the same
// schedule. Ciphertext is always exactly as long as the plaintext; the
// 16-byte tag is the only overhead.
//
// # Security Model
//
// Open verifies the authentication tag with a constant-time comparison
// before any decryption takes place. A forged or corrupted message yields
// [ErrAuthenticationFailed] and never any plaintext, partial or otherwise.
//
// Nonces MUST be unique for each encryption under the same key. Nonce reuse
// completely breaks AES-GCM: it leaks plaintext relationships and allows
// attackers to recover the authentication subkey and forge messages. The
// package does not track nonces; uniqueness is a hard caller obligation.
// Use [NewNonce] to generate random nonces, or a counter scheme of your own
// that cannot repeat.
//
// Keys, round-key schedules and hash subkeys are never logged or
// serialized. [AEAD.Wipe] overwrites this material when an instance is
// retired.
//
// Basic usage:
//
//	key, err := aesgcm.DeriveKey(sharedSecret, nil, []byte("myapp:v1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	aead, err := aesgcm.New(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nonce, err := aesgcm.NewNonce()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext := aead.Seal(nil, nonce, plaintext, nil)
//	decrypted, err := aead.Open(nil, nonce, ciphertext, nil)
//
// The nonce is not secret but must be stored or transported alongside the
// ciphertext; decryption needs all three of nonce, ciphertext and tag.
package aesgcm

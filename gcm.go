package aesgcm

import (
	"encoding/binary"

	"github.com/vaultsandbox/aesgcm-go/internal/ghash"
)

// initialCounterBlock builds J0: the 12-byte nonce followed by a big-endian
// 32-bit counter starting at 1. The tag mask is the encryption of this
// block; bulk keystream blocks use the incremented counters that follow it.
func initialCounterBlock(nonce []byte) [BlockSize]byte {
	var counter [BlockSize]byte
	copy(counter[:NonceSize], nonce)
	binary.BigEndian.PutUint32(counter[NonceSize:], 1)
	return counter
}

// inc32 increments the final 32 bits of the counter block, wrapping at
// 2^32. The nonce portion is never touched.
func inc32(counter *[BlockSize]byte) {
	n := binary.BigEndian.Uint32(counter[NonceSize:])
	binary.BigEndian.PutUint32(counter[NonceSize:], n+1)
}

// xorKeyStream encrypts successive counter blocks and xors the keystream
// against src, truncating the final block to the payload length. Counter
// mode is its own inverse, so sealing and opening share this routine.
// dst and src must be the same length and may overlap exactly.
func (a *AEAD) xorKeyStream(dst, src []byte, counter *[BlockSize]byte) {
	var keystream [BlockSize]byte
	for len(src) > 0 {
		a.block.Encrypt(keystream[:], counter[:])
		inc32(counter)

		n := len(src)
		if n > BlockSize {
			n = BlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ keystream[i]
		}
		dst = dst[n:]
		src = src[n:]
	}
}

// authTag folds the associated data, then the ciphertext, then their
// bit lengths through GHASH, and masks the digest with the encrypted
// initial counter block. The order is load-bearing: any other produces a
// tag incompatible with the standard.
func (a *AEAD) authTag(additionalData, ciphertext []byte, tagMask *[BlockSize]byte) [TagSize]byte {
	d := ghash.New(a.h)
	d.Fold(additionalData)
	d.Fold(ciphertext)

	tag := d.Sum(len(additionalData), len(ciphertext))
	for i := range tag {
		tag[i] ^= tagMask[i]
	}
	return tag
}

// Package ghash implements the GHASH universal hash used by GCM: carry-less
// multiplication in GF(2^128) under the polynomial x^128 + x^7 + x^2 + x + 1
// and the running digest that folds data blocks through it. It has no
// dependency on the block cipher; the hash subkey is supplied by the caller.
package ghash

import "encoding/binary"

// BlockSize is the GHASH block size in bytes.
const BlockSize = 16

// reduction is the low-order terms of the field polynomial, positioned at
// the top of the 128-bit value per the GCM bit ordering.
const reduction = uint64(0xe1) << 56

// Mul multiplies x and y as elements of GF(2^128). For each set bit of x it
// conditionally xors a copy of y into the accumulator, shifting y right one
// bit per step and folding the dropped bit back in with the reduction
// constant. This matches the NIST SP 800-38D multiplication bit for bit.
func Mul(x, y [BlockSize]byte) [BlockSize]byte {
	var zHi, zLo uint64
	vHi := binary.BigEndian.Uint64(y[:8])
	vLo := binary.BigEndian.Uint64(y[8:])

	for i := 0; i < BlockSize; i++ {
		for bit := 7; bit >= 0; bit-- {
			if x[i]>>uint(bit)&1 == 1 {
				zHi ^= vHi
				zLo ^= vLo
			}
			carry := vLo & 1
			vLo = vLo>>1 | vHi<<63
			vHi >>= 1
			if carry != 0 {
				vHi ^= reduction
			}
		}
	}

	var z [BlockSize]byte
	binary.BigEndian.PutUint64(z[:8], zHi)
	binary.BigEndian.PutUint64(z[8:], zLo)
	return z
}

// Digest is a running GHASH accumulator seeded with a hash subkey.
// The zero accumulator is the correct initial state.
type Digest struct {
	h [BlockSize]byte
	y [BlockSize]byte
}

// New returns a digest keyed with the hash subkey h.
func New(h [BlockSize]byte) *Digest {
	return &Digest{h: h}
}

// Fold absorbs data into the accumulator in 16-byte blocks. The final
// partial block of each call is zero-padded on the right; the padding exists
// only inside the hash computation. Folding an empty slice is a no-op, which
// is the correct treatment of zero-length associated data or ciphertext.
func (d *Digest) Fold(data []byte) {
	var block [BlockSize]byte
	for len(data) > 0 {
		n := copy(block[:], data)
		for i := n; i < BlockSize; i++ {
			block[i] = 0
		}
		for i := range d.y {
			d.y[i] ^= block[i]
		}
		d.y = Mul(d.y, d.h)
		data = data[n:]
	}
}

// Sum folds the final length block (64-bit big-endian bit lengths of the
// associated data and the ciphertext) and returns the digest. Sum finalizes
// the accumulator; the digest must not be folded into afterwards.
func (d *Digest) Sum(aadLen, textLen int) [BlockSize]byte {
	var lenBlock [BlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[:8], uint64(aadLen)*8)
	binary.BigEndian.PutUint64(lenBlock[8:], uint64(textLen)*8)
	for i := range d.y {
		d.y[i] ^= lenBlock[i]
	}
	d.y = Mul(d.y, d.h)
	return d.y
}

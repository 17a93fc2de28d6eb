package aes

import "math/bits"

// AES operates on binary polynomials over GF(2) modulo the irreducible
// polynomial x^8 + x^4 + x^3 + x + 1. Addition is xor; reduction is xor
// with the polynomial whenever the 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// gmul multiplies a and b as GF(2) polynomials modulo poly.
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= poly & 0xff
		}
		b >>= 1
	}
	return p
}

// sbox holds the FIPS-197 Figure 7 substitution values. The table is
// generated once at program start by walking all non-zero field elements
// with paired generators (p is multiplied by 3 while q is divided by 3,
// keeping q equal to the inverse of p) and applying the affine transform.
var sbox = func() (s [256]byte) {
	p, q := byte(1), byte(1)
	for {
		// multiply p by 3
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		// divide q by 3 (equals multiplication by 0xf6)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^
			bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		s[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse and maps to the affine constant alone.
	s[0] = 0x63
	return s
}()

// invSbox is the inverse substitution table used by the decryption rounds.
var invSbox = func() (s [256]byte) {
	for i, v := range sbox {
		s[v] = byte(i)
	}
	return s
}()

// rcon holds the round constants for the key schedule. AES-256 consumes
// rcon[1] through rcon[7]; index 0 is unused.
var rcon = [8]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40}

// Package aes implements the AES-256 block cipher from first principles as
// defined in FIPS-197: the substitution-permutation network over 16-byte
// blocks and the 256-bit key schedule. It is the keyed permutation underneath
// the GCM construction in the parent package and exposes nothing beyond
// single-block encryption and decryption.
package aes

import (
	"errors"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// numRounds is the round count for 256-bit keys.
	numRounds = 14
	// numRoundKeys is the number of 16-byte round keys the schedule derives.
	numRoundKeys = numRounds + 1
	// numWords is the number of 4-byte words in the expanded key.
	numWords = 4 * numRoundKeys
)

// ErrKeySize is returned by New when the key is not exactly 32 bytes.
var ErrKeySize = errors.New("aes: invalid key size")

// Cipher is an AES-256 instance. The round-key schedule is derived once in
// New and is read-only afterwards, so a Cipher may be shared across
// goroutines.
type Cipher struct {
	roundKeys [numRoundKeys][BlockSize]byte
}

// New expands key into a round-key schedule and returns the cipher.
// Only 32-byte (256-bit) keys are supported.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeySize, len(key), KeySize)
	}
	c := &Cipher{}
	c.expandKey(key)
	return c, nil
}

// expandKey derives the 15 round keys per FIPS-197 §5.2 with Nk=8.
// Every 8th word gets RotWord, SubWord and the round constant; the word at
// the midpoint of each 8-word group gets the extra SubWord that is specific
// to 256-bit keys.
func (c *Cipher) expandKey(key []byte) {
	var w [numWords][4]byte
	for i := 0; i < KeySize/4; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := KeySize / 4; i < numWords; i++ {
		t := w[i-1]
		switch {
		case i%8 == 0:
			t[0], t[1], t[2], t[3] = t[1], t[2], t[3], t[0]
			for j := range t {
				t[j] = sbox[t[j]]
			}
			t[0] ^= rcon[i/8]
		case i%8 == 4:
			for j := range t {
				t[j] = sbox[t[j]]
			}
		}
		for j := range t {
			w[i][j] = w[i-8][j] ^ t[j]
		}
	}
	for i := range c.roundKeys {
		for j := 0; j < 4; j++ {
			copy(c.roundKeys[i][4*j:], w[4*i+j][:])
		}
	}
}

// Encrypt applies the forward block transform to the 16 bytes of src and
// writes the result to dst. dst and src may overlap exactly. Any input
// shorter than a full block is a caller bug and panics.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	addRoundKey(&s, &c.roundKeys[0])
	for r := 1; r < numRounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &c.roundKeys[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &c.roundKeys[numRounds])

	copy(dst[:BlockSize], s[:])
}

// Decrypt applies the inverse block transform, undoing Encrypt.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	addRoundKey(&s, &c.roundKeys[numRounds])
	invShiftRows(&s)
	invSubBytes(&s)
	for r := numRounds - 1; r > 0; r-- {
		addRoundKey(&s, &c.roundKeys[r])
		invMixColumns(&s)
		invShiftRows(&s)
		invSubBytes(&s)
	}
	addRoundKey(&s, &c.roundKeys[0])

	copy(dst[:BlockSize], s[:])
}

// Wipe overwrites the round-key schedule with zeros. The cipher must not be
// used afterwards. This raises the bar for key extraction from memory but is
// not bulletproof against GC copies.
func (c *Cipher) Wipe() {
	for i := range c.roundKeys {
		for j := range c.roundKeys[i] {
			c.roundKeys[i][j] = 0
		}
	}
}

func addRoundKey(s, rk *[BlockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

func subBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows cyclically shifts row r of the column-major state left by r
// positions. Row r occupies indices r, r+4, r+8, r+12.
func shiftRows(s *[BlockSize]byte) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func invShiftRows(s *[BlockSize]byte) {
	s[5], s[9], s[13], s[1] = s[1], s[5], s[9], s[13]
	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]
	s[15], s[3], s[7], s[11] = s[3], s[7], s[11], s[15]
}

// mixColumns multiplies each state column by the fixed matrix
// {2,3,1,1; 1,2,3,1; 1,1,2,3; 3,1,1,2} over GF(2^8).
func mixColumns(s *[BlockSize]byte) {
	for i := 0; i < BlockSize; i += 4 {
		s0, s1, s2, s3 := s[i], s[i+1], s[i+2], s[i+3]
		s[i] = gmul(s0, 2) ^ gmul(s1, 3) ^ s2 ^ s3
		s[i+1] = s0 ^ gmul(s1, 2) ^ gmul(s2, 3) ^ s3
		s[i+2] = s0 ^ s1 ^ gmul(s2, 2) ^ gmul(s3, 3)
		s[i+3] = gmul(s0, 3) ^ s1 ^ s2 ^ gmul(s3, 2)
	}
}

// invMixColumns multiplies each state column by the inverse matrix
// {14,11,13,9; 9,14,11,13; 13,9,14,11; 11,13,9,14}.
func invMixColumns(s *[BlockSize]byte) {
	for i := 0; i < BlockSize; i += 4 {
		s0, s1, s2, s3 := s[i], s[i+1], s[i+2], s[i+3]
		s[i] = gmul(s0, 14) ^ gmul(s1, 11) ^ gmul(s2, 13) ^ gmul(s3, 9)
		s[i+1] = gmul(s0, 9) ^ gmul(s1, 14) ^ gmul(s2, 11) ^ gmul(s3, 13)
		s[i+2] = gmul(s0, 13) ^ gmul(s1, 9) ^ gmul(s2, 14) ^ gmul(s3, 11)
		s[i+3] = gmul(s0, 11) ^ gmul(s1, 13) ^ gmul(s2, 9) ^ gmul(s3, 14)
	}
}

package aesgcm

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of a GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of a GCM authentication tag in bytes.
	TagSize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// maxPlaintextSize is the largest message GCM can carry with a 32-bit
	// block counter: (2^32 - 2) full blocks. Beyond this the counter would
	// wrap and keystream blocks would repeat.
	maxPlaintextSize = ((1 << 32) - 2) * BlockSize
)

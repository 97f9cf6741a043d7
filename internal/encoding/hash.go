package encoding

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash256 returns sha256(sha256(data)), used as the Base58Check checksum.
func Hash256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns ripemd160(sha256(data)), the 20-byte digest Bitcoin
// addresses are built from.
func Hash160(data []byte) []byte {
	h1 := sha256.Sum256(data)

	hasher := ripemd160.New()
	hasher.Write(h1[:])
	return hasher.Sum(nil)
}

package keys

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"secp256k1/internal/eccmath"
	"secp256k1/internal/encoding"
)

// WIF (Wallet Import Format) version bytes.
const (
	wifPrefixMainnet    byte = 0x80
	wifPrefixTestnet    byte = 0xef
	wifCompressedSuffix byte = 0x01
)

// PublicKey is a secp256k1 public point.
type PublicKey = eccmath.S256Point

// PrivateKey is a secp256k1 secret scalar e and its derived public point
// P = e*G, computed once at construction.
type PrivateKey struct {
	secret *big.Int
	point  PublicKey
}

// NewPrivateKey builds a PrivateKey from the secret scalar e, failing only
// if scalar multiplication against the fixed generator fails (it cannot,
// for any e - the check exists so construction has an error return rather
// than a hidden panic).
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	point, err := eccmath.G.ScalarMul(secret)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{secret: new(big.Int).Set(secret), point: point}, nil
}

func (pk *PrivateKey) String() string {
	return pk.Hex()
}

// Hex returns e as 64 lowercase hex characters, left zero-padded.
func (pk *PrivateKey) Hex() string {
	return fmt.Sprintf("%064x", pk.secret)
}

// PublicKey returns the cached public point P = e*G.
func (pk *PrivateKey) PublicKey() PublicKey {
	return pk.point
}

// Sign signs hash z with a nonce drawn uniformly from crypto/rand.
func (pk *PrivateKey) Sign(z *big.Int) (eccmath.Signature, error) {
	return eccmath.Sign(pk.secret, z)
}

// SignHash is a convenience wrapper over Sign that treats hash as a
// big-endian unsigned integer z.
func (pk *PrivateKey) SignHash(hash []byte) (eccmath.Signature, error) {
	z := new(big.Int).SetBytes(hash)
	return pk.Sign(z)
}

// SignDeterministic signs hash z using an RFC 6979 deterministic nonce
// instead of crypto/rand, so the same (e, z) pair always produces the same
// signature. This is an alternative to Sign, not a replacement: spec.md's
// signing procedure is the crypto/rand path Sign implements.
func (pk *PrivateKey) SignDeterministic(z *big.Int) (eccmath.Signature, error) {
	k := deterministicNonce(pk.secret, z)
	return eccmath.SignWithNonce(pk.secret, z, k)
}

// deterministicNonce implements RFC 6979's HMAC-DRBG nonce derivation,
// specialized to secp256k1's order N and SHA-256.
func deterministicNonce(secret, z *big.Int) *big.Int {
	n := eccmath.N
	zMod := new(big.Int).Set(z)
	if zMod.Cmp(n) >= 0 {
		zMod.Sub(zMod, n)
	}

	secretBytes := secret.FillBytes(make([]byte, 32))
	zBytes := zMod.FillBytes(make([]byte, 32))

	k := make([]byte, 32)
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}

	k = hmacSHA256(k, append(append(append([]byte{}, v...), 0x00), append(secretBytes, zBytes...)...))
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, append(append(append([]byte{}, v...), 0x01), append(secretBytes, zBytes...)...))
	v = hmacSHA256(k, v)

	for {
		v = hmacSHA256(k, v)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(n) < 0 {
			return candidate
		}
		k = hmacSHA256(k, append(append([]byte{}, v...), 0x00))
		v = hmacSHA256(k, v)
	}
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Wif encodes the private key in Wallet Import Format: a network prefix,
// the 32-byte zero-padded secret, and (iff compressed) a 0x01 suffix,
// Base58Check-encoded.
func (pk *PrivateKey) Wif(compressed, testnet bool) string {
	secretBytes := pk.secret.FillBytes(make([]byte, 32))

	prefix := wifPrefixMainnet
	if testnet {
		prefix = wifPrefixTestnet
	}

	payload := make([]byte, 0, 34)
	payload = append(payload, prefix)
	payload = append(payload, secretBytes...)
	if compressed {
		payload = append(payload, wifCompressedSuffix)
	}

	return encoding.EncodeBase58Check(payload)
}

// ParsePublicKey reads a SEC-encoded public key from r.
func ParsePublicKey(r io.Reader) (*PublicKey, error) {
	secBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	point, err := eccmath.ParseSEC(secBytes)
	if err != nil {
		return nil, fmt.Errorf("keys: parsing SEC public key: %w", err)
	}
	return &point, nil
}

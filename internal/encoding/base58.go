package encoding

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Base58Alphabet is the Bitcoin Base58 alphabet: the 58 alphanumeric
// characters with 0, O, I, and l removed to avoid visual ambiguity.
const Base58Alphabet string = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodeBase58 encodes data in Base58, representing each leading zero byte
// as a leading '1' character.
func EncodeBase58(data []byte) string {
	count := 0
	for _, b := range data {
		if b == 0 {
			count++
		} else {
			break
		}
	}

	num := new(big.Int).SetBytes(data)

	var result strings.Builder
	encoded := make([]byte, 0, len(data)*138/100+1)
	zero := big.NewInt(0)
	fiftyEight := big.NewInt(58)
	mod := new(big.Int)

	for num.Cmp(zero) > 0 {
		num.DivMod(num, fiftyEight, mod)
		encoded = append(encoded, Base58Alphabet[mod.Int64()])
	}

	result.WriteString(strings.Repeat("1", count))
	for i := len(encoded) - 1; i >= 0; i-- {
		result.WriteByte(encoded[i])
	}
	return result.String()
}

// DecodeBase58 is the inverse of EncodeBase58.
func DecodeBase58(s string) ([]byte, error) {
	count := 0
	for _, c := range s {
		if c == '1' {
			count++
		} else {
			break
		}
	}

	num := big.NewInt(0)
	fiftyEight := big.NewInt(58)
	for _, c := range s {
		index := strings.IndexByte(Base58Alphabet, byte(c))
		if index == -1 {
			return nil, fmt.Errorf("%w: invalid base58 character %q", ErrMalformedEncoding, c)
		}
		num.Mul(num, fiftyEight)
		num.Add(num, big.NewInt(int64(index)))
	}

	decoded := num.Bytes()
	return append(make([]byte, count), decoded...), nil
}

// EncodeBase58Check appends a 4-byte double-SHA-256 checksum to payload
// and Base58-encodes the result.
func EncodeBase58Check(payload []byte) string {
	checksum := Hash256(payload)[:4]
	return EncodeBase58(append(slices.Clone(payload), checksum...))
}

// DecodeBase58Check is the inverse of EncodeBase58Check: it decodes s and
// verifies the trailing 4-byte checksum, returning the payload with the
// checksum stripped. It fails if the checksum does not match.
func DecodeBase58Check(s string) ([]byte, error) {
	combined, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(combined) < 4 {
		return nil, fmt.Errorf("%w: base58check payload too short", ErrMalformedEncoding)
	}

	payload := combined[:len(combined)-4]
	checksum := combined[len(combined)-4:]

	want := Hash256(payload)[:4]
	if !slices.Equal(want, checksum) {
		return nil, fmt.Errorf("%w: bad base58check checksum: got %x, want %x", ErrMalformedEncoding, checksum, want)
	}
	return payload, nil
}

package eccmath

import (
	"fmt"
	"math/big"

	"secp256k1/internal/encoding"
)

// Signature is an ECDSA signature (r, s), with 1 <= r, s < N.
type Signature struct {
	r, s *big.Int
}

// NewSignature builds a signature from r and s, copying both so the
// caller's big.Ints can't alias into the result.
func NewSignature(r, s *big.Int) Signature {
	return Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

func (sig Signature) String() string {
	return fmt.Sprintf("Signature(r=%x,s=%x)", sig.r, sig.s)
}

// R returns the signature's r component.
func (sig Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns the signature's s component.
func (sig Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// derInt encodes n big-endian with leading zero bytes stripped, and a
// single 0x00 re-prepended iff the high bit of the remaining bytes is set
// -- DER integers are signed, and this keeps n non-negative.
func derInt(n *big.Int) []byte {
	b := n.Bytes()
	i := 0
	for i < len(b) && b[i] == 0x00 {
		i++
	}
	b = b[i:]
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// Der serializes sig as a DER SEQUENCE of two INTEGERs.
func (sig Signature) Der() []byte {
	rBytes := derInt(sig.r)
	sBytes := derInt(sig.s)

	body := make([]byte, 0, 4+len(rBytes)+len(sBytes))
	body = append(body, 0x02, byte(len(rBytes)))
	body = append(body, rBytes...)
	body = append(body, 0x02, byte(len(sBytes)))
	body = append(body, sBytes...)

	out := make([]byte, 0, 2+len(body))
	out = append(out, 0x30, byte(len(body)))
	out = append(out, body...)
	return out
}

// ParseDER parses the inverse of Der.
func ParseDER(data []byte) (Signature, error) {
	r := encoding.NewByteReader(data)

	tag, err := r.ReadByte()
	if err != nil {
		return Signature{}, err
	}
	if tag != 0x30 {
		return Signature{}, fmt.Errorf("%w: expected DER sequence tag 0x30, got 0x%02x", ErrMalformedEncoding, tag)
	}

	length, err := r.ReadByte()
	if err != nil {
		return Signature{}, err
	}
	if int(length)+2 != len(data) {
		return Signature{}, fmt.Errorf("%w: DER length byte %d does not match buffer length %d", ErrMalformedEncoding, length, len(data))
	}

	rVal, err := parseDerInt(r)
	if err != nil {
		return Signature{}, err
	}
	sVal, err := parseDerInt(r)
	if err != nil {
		return Signature{}, err
	}

	if r.Remaining() != 0 {
		return Signature{}, fmt.Errorf("%w: trailing bytes after DER signature", ErrMalformedEncoding)
	}

	return NewSignature(rVal, sVal), nil
}

func parseDerInt(r *encoding.ByteReader) (*big.Int, error) {
	marker, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if marker != 0x02 {
		return nil, fmt.Errorf("%w: expected DER integer tag 0x02, got 0x%02x", ErrMalformedEncoding, marker)
	}

	length, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	valBytes, err := r.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(valBytes), nil
}

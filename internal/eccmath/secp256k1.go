package eccmath

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"secp256k1/internal/encoding"
)

// N is the order of the secp256k1 generator subgroup.
var N = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

var (
	curveA = mustFieldElement(big.NewInt(0))
	curveB = mustFieldElement(big.NewInt(7))

	gX = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gY = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	// G is the secp256k1 generator point.
	G = mustG()
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("eccmath: invalid hex constant " + s)
	}
	return n
}

func mustFieldElement(n *big.Int) FieldElement {
	fe, err := NewFieldElement(n, P)
	if err != nil {
		panic(err)
	}
	return fe
}

func mustG() S256Point {
	x := mustFieldElement(gX)
	y := mustFieldElement(gY)
	p, err := NewPoint(x, y, curveA, curveB)
	if err != nil {
		panic(err)
	}
	return S256Point{Point: p}
}

// S256Point is a point on the secp256k1 curve y^2 = x^3 + 7 over Fp.
type S256Point struct {
	Point
}

// NewS256Point builds the point (x, y) on secp256k1, failing if it is not
// on the curve.
func NewS256Point(x, y Secp256k1Field) (S256Point, error) {
	p, err := NewPoint(x.FieldElement, y.FieldElement, curveA, curveB)
	if err != nil {
		return S256Point{}, err
	}
	return S256Point{Point: p}, nil
}

// InfinityS256Point is the identity element of the secp256k1 group.
func InfinityS256Point() S256Point {
	return S256Point{Point: NewInfinityPoint(curveA, curveB)}
}

// ScalarMul returns k*p, reducing k modulo the subgroup order N first.
func (p S256Point) ScalarMul(k *big.Int) (S256Point, error) {
	coef := new(big.Int).Mod(k, N)
	pt, err := p.Point.ScalarMul(coef)
	if err != nil {
		return S256Point{}, err
	}
	return S256Point{Point: pt}, nil
}

// Add adds two secp256k1 points.
func (p S256Point) Add(other S256Point) (S256Point, error) {
	pt, err := p.Point.Add(other.Point)
	if err != nil {
		return S256Point{}, err
	}
	return S256Point{Point: pt}, nil
}

// X returns the point's x-coordinate. Meaningless on the identity; callers
// are expected to check IsInfinity first, matching the spec's treatment of
// address/SEC/verify as operating on non-identity points.
func (p S256Point) X() *big.Int {
	return p.Point.x.Num()
}

// Y returns the point's y-coordinate.
func (p S256Point) Y() *big.Int {
	return p.Point.y.Num()
}

// Verify checks the ECDSA signature sig over hash z against public point p.
func (p S256Point) Verify(z *big.Int, sig Signature) bool {
	sInv := new(big.Int).Exp(sig.s, new(big.Int).Sub(N, big.NewInt(2)), N)

	u := new(big.Int).Mod(new(big.Int).Mul(z, sInv), N)
	v := new(big.Int).Mod(new(big.Int).Mul(sig.r, sInv), N)

	uG, err := G.ScalarMul(u)
	if err != nil {
		return false
	}
	vP, err := p.ScalarMul(v)
	if err != nil {
		return false
	}
	total, err := uG.Add(vP)
	if err != nil {
		return false
	}
	if total.IsInfinity() {
		return false
	}

	return total.X().Cmp(sig.r) == 0
}

// Sec serializes p per the SEC standard: 65-byte uncompressed
// (0x04 || x || y) or 33-byte compressed ((0x02|0x03) || x).
func (p S256Point) Sec(compressed bool) []byte {
	xBytes := p.X().FillBytes(make([]byte, 32))

	if !compressed {
		out := make([]byte, 0, 65)
		out = append(out, 0x04)
		out = append(out, xBytes...)
		out = append(out, p.Y().FillBytes(make([]byte, 32))...)
		return out
	}

	prefix := byte(0x02)
	if p.Y().Bit(0) == 1 {
		prefix = 0x03
	}
	out := make([]byte, 0, 33)
	out = append(out, prefix)
	out = append(out, xBytes...)
	return out
}

// ParseSEC parses the inverse of Sec.
func ParseSEC(data []byte) (S256Point, error) {
	if len(data) == 65 && data[0] == 0x04 {
		x, err := NewSecp256k1Field(new(big.Int).SetBytes(data[1:33]))
		if err != nil {
			return S256Point{}, err
		}
		y, err := NewSecp256k1Field(new(big.Int).SetBytes(data[33:65]))
		if err != nil {
			return S256Point{}, err
		}
		return NewS256Point(x, y)
	}

	if len(data) == 33 && (data[0] == 0x02 || data[0] == 0x03) {
		x, err := NewSecp256k1Field(new(big.Int).SetBytes(data[1:33]))
		if err != nil {
			return S256Point{}, err
		}

		alpha, err := x.Cubed().Add(Secp256k1Field{curveB})
		if err != nil {
			return S256Point{}, err
		}
		beta := alpha.Sqrt()

		wantEven := data[0] == 0x02
		isEven := beta.Num().Bit(0) == 0

		var y Secp256k1Field
		if isEven == wantEven {
			y = beta
		} else {
			y, err = NewSecp256k1Field(new(big.Int).Sub(P, beta.Num()))
			if err != nil {
				return S256Point{}, err
			}
		}
		return NewS256Point(x, y)
	}

	return S256Point{}, fmt.Errorf("%w: SEC buffer has invalid length %d", ErrMalformedEncoding, len(data))
}

// Hash160 returns ripemd160(sha256(sec(compressed))).
func (p S256Point) Hash160(compressed bool) []byte {
	return encoding.Hash160(p.Sec(compressed))
}

// Address returns the Base58Check-encoded P2PKH address for p.
func (p S256Point) Address(compressed, testnet bool) string {
	prefix := byte(0x00)
	if testnet {
		prefix = 0x6f
	}
	payload := append([]byte{prefix}, p.Hash160(compressed)...)
	return encoding.EncodeBase58Check(payload)
}

// Sign produces an ECDSA signature over hash z under secret scalar e,
// drawing the nonce k uniformly from [1, N) via crypto/rand and applying
// low-s normalization.
func Sign(e, z *big.Int) (Signature, error) {
	k, err := randScalar()
	if err != nil {
		return Signature{}, fmt.Errorf("eccmath: generating nonce: %w", err)
	}
	return SignWithNonce(e, z, k)
}

// SignWithNonce signs z under secret e with an explicit nonce k, applying
// the same low-s normalization as Sign. Exported so callers with their own
// nonce derivation (e.g. RFC 6979) can reuse the core signing arithmetic.
func SignWithNonce(e, z, k *big.Int) (Signature, error) {
	R, err := G.ScalarMul(k)
	if err != nil {
		return Signature{}, err
	}
	r := R.X()

	kInv := new(big.Int).Exp(k, new(big.Int).Sub(N, big.NewInt(2)), N)

	re := new(big.Int).Mul(r, e)
	s := new(big.Int).Add(z, re)
	s.Mul(s, kInv)
	s.Mod(s, N)

	halfN := new(big.Int).Rsh(N, 1)
	if s.Cmp(halfN) > 0 {
		s = new(big.Int).Sub(N, s)
	}

	return NewSignature(r, s), nil
}

func randScalar() (*big.Int, error) {
	n, err := rand.Int(rand.Reader, N)
	if err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		n.SetInt64(1)
	}
	return n, nil
}

package eccmath

import "math/big"

// P is the secp256k1 field prime, 2^256 - 2^32 - 977.
var P = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Sub(p, big.NewInt(977))
	return p
}()

// Secp256k1Field is a FieldElement specialized to the fixed secp256k1
// prime P. It exists as a distinct type from the generic FieldElement so
// that a value built against the wrong prime is a compile-time field
// mismatch everywhere it matters, even though the arithmetic underneath is
// identical.
type Secp256k1Field struct {
	FieldElement
}

// NewSecp256k1Field builds num mod P.
func NewSecp256k1Field(num *big.Int) (Secp256k1Field, error) {
	fe, err := NewFieldElement(num, P)
	if err != nil {
		return Secp256k1Field{}, err
	}
	return Secp256k1Field{fe}, nil
}

func wrapS256(fe FieldElement, err error) (Secp256k1Field, error) {
	if err != nil {
		return Secp256k1Field{}, err
	}
	return Secp256k1Field{fe}, nil
}

func (fe Secp256k1Field) Add(other Secp256k1Field) (Secp256k1Field, error) {
	return wrapS256(fe.FieldElement.Add(other.FieldElement))
}

func (fe Secp256k1Field) Sub(other Secp256k1Field) (Secp256k1Field, error) {
	return wrapS256(fe.FieldElement.Sub(other.FieldElement))
}

func (fe Secp256k1Field) Mul(other Secp256k1Field) (Secp256k1Field, error) {
	return wrapS256(fe.FieldElement.Mul(other.FieldElement))
}

func (fe Secp256k1Field) Div(other Secp256k1Field) (Secp256k1Field, error) {
	return wrapS256(fe.FieldElement.Div(other.FieldElement))
}

func (fe Secp256k1Field) Squared() Secp256k1Field {
	return Secp256k1Field{fe.FieldElement.Squared()}
}

func (fe Secp256k1Field) Cubed() Secp256k1Field {
	return Secp256k1Field{fe.FieldElement.Cubed()}
}

// Sqrt returns fe^((P+1)/4) mod P, one of the two square roots of fe when
// fe is a quadratic residue, since P ≡ 3 (mod 4). The caller is responsible for
// picking the correctly-signed root when parsing a compressed SEC point.
func (fe Secp256k1Field) Sqrt() Secp256k1Field {
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Div(exp, big.NewInt(4))
	return Secp256k1Field{fe.FieldElement.Pow(exp)}
}

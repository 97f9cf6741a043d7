package eccmath

import (
	"fmt"
	"math/big"
)

// FieldElement is an element of a finite field Z/pZ for an arbitrary prime
// p. The zero value is not valid; use NewFieldElement.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement builds the field element num mod prime. num is reduced
// into [0, prime) with Euclidean (always non-negative) reduction. It fails
// if prime < 2.
func NewFieldElement(num, prime *big.Int) (FieldElement, error) {
	if prime.Cmp(big.NewInt(2)) < 0 {
		return FieldElement{}, fmt.Errorf("%w: prime %s is less than 2", ErrConstruction, prime)
	}
	n := new(big.Int).Mod(num, prime)
	return FieldElement{num: n, prime: new(big.Int).Set(prime)}, nil
}

func (fe FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", fe.prime, fe.num)
}

// Num returns the element's representative in [0, prime).
func (fe FieldElement) Num() *big.Int { return new(big.Int).Set(fe.num) }

// Prime returns the element's modulus.
func (fe FieldElement) Prime() *big.Int { return new(big.Int).Set(fe.prime) }

// Equal reports whether fe and other carry the same value and modulus.
func (fe FieldElement) Equal(other FieldElement) bool {
	return fe.num.Cmp(other.num) == 0 && fe.prime.Cmp(other.prime) == 0
}

// IsZero reports whether fe is the additive identity.
func (fe FieldElement) IsZero() bool {
	return fe.num.Sign() == 0
}

func (fe FieldElement) samePrime(other FieldElement) error {
	if fe.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("%w: %s and %s are from different fields", ErrOperandMismatch, fe, other)
	}
	return nil
}

// Add returns fe + other mod prime.
func (fe FieldElement) Add(other FieldElement) (FieldElement, error) {
	if err := fe.samePrime(other); err != nil {
		return FieldElement{}, err
	}
	sum := new(big.Int).Add(fe.num, other.num)
	return NewFieldElement(sum, fe.prime)
}

// Sub returns fe - other mod prime, Euclidean-reduced so the result is
// always in [0, prime).
func (fe FieldElement) Sub(other FieldElement) (FieldElement, error) {
	if err := fe.samePrime(other); err != nil {
		return FieldElement{}, err
	}
	diff := new(big.Int).Sub(fe.num, other.num)
	return NewFieldElement(diff, fe.prime)
}

// Mul returns fe * other mod prime.
func (fe FieldElement) Mul(other FieldElement) (FieldElement, error) {
	if err := fe.samePrime(other); err != nil {
		return FieldElement{}, err
	}
	prod := new(big.Int).Mul(fe.num, other.num)
	return NewFieldElement(prod, fe.prime)
}

// Neg returns -fe mod prime.
func (fe FieldElement) Neg() FieldElement {
	neg := new(big.Int).Neg(fe.num)
	r, _ := NewFieldElement(neg, fe.prime) // Neg can't fail: fe.prime already validated
	return r
}

// Pow returns fe^exp mod prime for any integer exponent, including
// negative ones. The exponent is first reduced into [0, prime-1) via
// Euclidean modulo, then exponentiation proceeds by square-and-multiply.
func (fe FieldElement) Pow(exp *big.Int) FieldElement {
	primeMinusOne := new(big.Int).Sub(fe.prime, big.NewInt(1))
	e := new(big.Int).Mod(exp, primeMinusOne)
	result := new(big.Int).Exp(fe.num, e, fe.prime)
	r, _ := NewFieldElement(result, fe.prime)
	return r
}

// Squared returns fe^2 mod prime.
func (fe FieldElement) Squared() FieldElement {
	return fe.Pow(big.NewInt(2))
}

// Cubed returns fe^3 mod prime.
func (fe FieldElement) Cubed() FieldElement {
	return fe.Pow(big.NewInt(3))
}

// Div returns fe / other mod prime, computed as fe * other^(prime-2) via
// Fermat's little theorem. Fails if other is zero.
func (fe FieldElement) Div(other FieldElement) (FieldElement, error) {
	if err := fe.samePrime(other); err != nil {
		return FieldElement{}, err
	}
	if other.IsZero() {
		return FieldElement{}, fmt.Errorf("%w: dividing %s by zero", ErrDivisionByZero, fe)
	}
	inv := other.Pow(new(big.Int).Sub(other.prime, big.NewInt(2)))
	return fe.Mul(inv)
}

// RMul returns fe scaled by the unreduced integer k: (fe.num * k) mod prime.
func (fe FieldElement) RMul(k *big.Int) FieldElement {
	scaled := new(big.Int).Mul(fe.num, k)
	r, _ := NewFieldElement(scaled, fe.prime)
	return r
}

package eccmath

import (
	"fmt"
	"math/big"
)

var bigThree = big.NewInt(3)

// Point is a point on the short Weierstrass curve y^2 = x^3 + a*x + b over
// Fq. X and Y are both present for an affine point and both absent for the
// identity at infinity; a point with exactly one of the two present is a
// construction error.
type Point struct {
	x, y       FieldElement
	isInfinity bool
	a, b       FieldElement
}

// NewPoint builds the affine point (x, y) on curve (a, b); the identity is
// built with NewInfinityPoint instead. It fails if (x, y) does not satisfy
// y^2 = x^3 + a*x + b.
func NewPoint(x, y, a, b FieldElement) (Point, error) {
	ySquared := y.Squared()
	xCubed := x.Cubed()

	ax, err := a.Mul(x)
	if err != nil {
		return Point{}, err
	}
	rhs, err := xCubed.Add(ax)
	if err != nil {
		return Point{}, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return Point{}, err
	}
	if !ySquared.Equal(rhs) {
		return Point{}, fmt.Errorf("%w: (%s, %s) is not on curve y^2=x^3+%sx+%s", ErrConstruction, x, y, a, b)
	}

	return Point{x: x, y: y, a: a, b: b}, nil
}

// NewInfinityPoint builds the identity element of the group (a, b).
func NewInfinityPoint(a, b FieldElement) Point {
	return Point{a: a, b: b, isInfinity: true}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return p.isInfinity
}

func (p Point) String() string {
	if p.isInfinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s,%s)_%s_%s", p.x, p.y, p.a, p.b)
}

func (p Point) sameCurve(other Point) bool {
	return p.a.Equal(other.a) && p.b.Equal(other.b)
}

// Equal reports whether p and other are the same point on the same curve.
func (p Point) Equal(other Point) bool {
	if !p.sameCurve(other) {
		return false
	}
	if p.isInfinity || other.isInfinity {
		return p.isInfinity == other.isInfinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Add implements the elliptic-curve group law: identity handling, the
// vertical-tangent/inverse case, doubling, and the general chord case.
func (p Point) Add(other Point) (Point, error) {
	if !p.sameCurve(other) {
		return Point{}, fmt.Errorf("%w: points are on different curves", ErrOperandMismatch)
	}

	if p.isInfinity {
		return other, nil
	}
	if other.isInfinity {
		return p, nil
	}

	if p.x.Equal(other.x) && !p.y.Equal(other.y) {
		return NewInfinityPoint(p.a, p.b), nil
	}

	if p.x.Equal(other.x) && p.y.Equal(other.y) {
		if p.y.IsZero() {
			return NewInfinityPoint(p.a, p.b), nil
		}
		return p.double()
	}

	slope, err := other.y.Sub(p.y)
	if err != nil {
		return Point{}, err
	}
	dx, err := other.x.Sub(p.x)
	if err != nil {
		return Point{}, err
	}
	slope, err = slope.Div(dx)
	if err != nil {
		return Point{}, err
	}

	x3, err := slope.Squared().Sub(p.x)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(other.x)
	if err != nil {
		return Point{}, err
	}

	y3, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Mul(slope)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return Point{}, err
	}

	return Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

func (p Point) double() (Point, error) {
	three, err := NewFieldElement(bigThree, p.x.prime)
	if err != nil {
		return Point{}, err
	}

	num, err := p.x.Squared().Mul(three)
	if err != nil {
		return Point{}, err
	}
	num, err = num.Add(p.a)
	if err != nil {
		return Point{}, err
	}

	denom, err := p.y.Add(p.y)
	if err != nil {
		return Point{}, err
	}

	slope, err := num.Div(denom)
	if err != nil {
		return Point{}, err
	}

	twoX, err := p.x.Add(p.x)
	if err != nil {
		return Point{}, err
	}
	x3, err := slope.Squared().Sub(twoX)
	if err != nil {
		return Point{}, err
	}

	y3, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Mul(slope)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return Point{}, err
	}

	return Point{x: x3, y: y3, a: p.a, b: p.b}, nil
}

// ScalarMul computes k*p via LSB-first double-and-add. k must be
// non-negative; k == 0 yields the identity.
func (p Point) ScalarMul(k *big.Int) (Point, error) {
	result := NewInfinityPoint(p.a, p.b)
	current := p

	coef := new(big.Int).Set(k)
	zero := big.NewInt(0)
	var err error
	for coef.Cmp(zero) > 0 {
		if coef.Bit(0) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return Point{}, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return Point{}, err
		}
		coef.Rsh(coef, 1)
	}
	return result, nil
}

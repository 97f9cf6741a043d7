package eccmath

import "errors"

// Structured error kinds. Construction and operand errors are programmer
// errors: they signal that the caller built something inconsistent (a
// field element with the wrong modulus, a point off its own curve) and are
// not expected to be handled beyond propagation and logging. Encoding
// errors occur on attacker-controlled input and are meant to be caught
// with errors.Is and recovered from.
var (
	// ErrConstruction marks an attempt to build a value that violates its
	// own invariants: a field with prime < 2, a point not on its curve, or
	// a point with exactly one coordinate present.
	ErrConstruction = errors.New("eccmath: construction error")

	// ErrOperandMismatch marks arithmetic across incompatible operands:
	// field elements with different primes, or points on different curves.
	ErrOperandMismatch = errors.New("eccmath: operand mismatch")

	// ErrDivisionByZero marks division by the zero field element.
	ErrDivisionByZero = errors.New("eccmath: division by zero")

	// ErrMalformedEncoding marks a byte string that cannot be decoded: a
	// SEC buffer of the wrong length or a DER tag/length mismatch. The
	// codec-level counterpart for varint and Base58Check lives in
	// internal/encoding.
	ErrMalformedEncoding = errors.New("eccmath: malformed encoding")
)

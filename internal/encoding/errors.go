package encoding

import "errors"

// ErrMalformedEncoding marks a byte string that fails to decode: a bad
// Base58Check checksum, a Base58Check string shorter than its checksum, or
// an invalid Base58 character.
var ErrMalformedEncoding = errors.New("encoding: malformed encoding")

// ErrShortRead marks a ByteReader unable to satisfy a requested length.
var ErrShortRead = errors.New("encoding: short read")

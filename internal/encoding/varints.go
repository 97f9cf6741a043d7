package encoding

import (
	"encoding/binary"
	"io"
)

// ReadVarInt reads Bitcoin's variable-length unsigned integer encoding
// from r: a single byte, unless that byte is 0xfd/0xfe/0xff, in which case
// the following 2/4/8 bytes (little-endian) hold the value.
func ReadVarInt(r io.Reader) (uint64, error) {
	buf := make([]byte, 8)

	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}

	switch buf[0] {
	case 0xfd:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:2])), nil
	case 0xfe:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(buf[:4])), nil
	case 0xff:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:8]), nil
	default:
		return uint64(buf[0]), nil
	}
}

// EncodeVarInt encodes i in Bitcoin's varint format: one byte for i <
// 0xfd, else a discriminator byte (0xfd/0xfe/0xff) followed by the value
// in 2/4/8 little-endian bytes, gated by how large i is. Every uint64
// value is representable, so this never fails; it returns an error to
// keep the signature symmetric with ReadVarInt and stable if a future
// caller feeds in a value derived from a wider type.
func EncodeVarInt(i uint64) ([]byte, error) {
	switch {
	case i < 0xfd:
		return []byte{byte(i)}, nil
	case i <= 0xffff:
		result := make([]byte, 3)
		result[0] = 0xfd
		binary.LittleEndian.PutUint16(result[1:], uint16(i))
		return result, nil
	case i <= 0xffffffff:
		result := make([]byte, 5)
		result[0] = 0xfe
		binary.LittleEndian.PutUint32(result[1:], uint32(i))
		return result, nil
	default:
		result := make([]byte, 9)
		result[0] = 0xff
		binary.LittleEndian.PutUint64(result[1:], i)
		return result, nil
	}
}

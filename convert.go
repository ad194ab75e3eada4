package binstream

import (
	"math"

	"github.com/kaba4cow/binstream/float16"
)

// The Encode functions return the fixed-length byte sequence of a
// single scalar value; the byte count depends only on the type, never
// on the value or byte order. The Decode functions are their inverses
// and fail with a *LengthError unless the input has exactly the
// expected length. Decoding never modifies the input.

// EncodeUint8 returns the 1-byte encoding of v.
func EncodeUint8(v uint8) []byte { return []byte{v} }

// DecodeUint8 decodes a 1-byte sequence.
func DecodeUint8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, &LengthError{Expected: 1, Actual: len(b)}
	}
	return b[0], nil
}

// EncodeInt8 returns the 1-byte encoding of v.
func EncodeInt8(v int8) []byte { return []byte{uint8(v)} }

// DecodeInt8 decodes a 1-byte sequence.
func DecodeInt8(b []byte) (int8, error) {
	v, err := DecodeUint8(b)
	return int8(v), err
}

// EncodeBool returns the 1-byte encoding of v: 1 for true, 0 for false.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool decodes a 1-byte sequence; any non-zero byte is true.
func DecodeBool(b []byte) (bool, error) {
	v, err := DecodeUint8(b)
	return v != 0, err
}

// EncodeUint16 returns the 2-byte encoding of v in byte order o.
func EncodeUint16(v uint16, o ByteOrder) []byte {
	b := make([]byte, 2)
	o.byteOrder().PutUint16(b, v)
	return b
}

// DecodeUint16 decodes a 2-byte sequence in byte order o.
func DecodeUint16(b []byte, o ByteOrder) (uint16, error) {
	if len(b) != 2 {
		return 0, &LengthError{Expected: 2, Actual: len(b)}
	}
	return o.byteOrder().Uint16(b), nil
}

// EncodeInt16 returns the 2-byte encoding of v in byte order o.
func EncodeInt16(v int16, o ByteOrder) []byte {
	return EncodeUint16(uint16(v), o)
}

// DecodeInt16 decodes a 2-byte sequence in byte order o.
func DecodeInt16(b []byte, o ByteOrder) (int16, error) {
	v, err := DecodeUint16(b, o)
	return int16(v), err
}

// EncodeUint32 returns the 4-byte encoding of v in byte order o.
func EncodeUint32(v uint32, o ByteOrder) []byte {
	b := make([]byte, 4)
	o.byteOrder().PutUint32(b, v)
	return b
}

// DecodeUint32 decodes a 4-byte sequence in byte order o.
func DecodeUint32(b []byte, o ByteOrder) (uint32, error) {
	if len(b) != 4 {
		return 0, &LengthError{Expected: 4, Actual: len(b)}
	}
	return o.byteOrder().Uint32(b), nil
}

// EncodeInt32 returns the 4-byte encoding of v in byte order o.
func EncodeInt32(v int32, o ByteOrder) []byte {
	return EncodeUint32(uint32(v), o)
}

// DecodeInt32 decodes a 4-byte sequence in byte order o.
func DecodeInt32(b []byte, o ByteOrder) (int32, error) {
	v, err := DecodeUint32(b, o)
	return int32(v), err
}

// EncodeUint64 returns the 8-byte encoding of v in byte order o.
func EncodeUint64(v uint64, o ByteOrder) []byte {
	b := make([]byte, 8)
	o.byteOrder().PutUint64(b, v)
	return b
}

// DecodeUint64 decodes an 8-byte sequence in byte order o.
func DecodeUint64(b []byte, o ByteOrder) (uint64, error) {
	if len(b) != 8 {
		return 0, &LengthError{Expected: 8, Actual: len(b)}
	}
	return o.byteOrder().Uint64(b), nil
}

// EncodeInt64 returns the 8-byte encoding of v in byte order o.
func EncodeInt64(v int64, o ByteOrder) []byte {
	return EncodeUint64(uint64(v), o)
}

// DecodeInt64 decodes an 8-byte sequence in byte order o.
func DecodeInt64(b []byte, o ByteOrder) (int64, error) {
	v, err := DecodeUint64(b, o)
	return int64(v), err
}

// EncodeFloat16 returns the 2-byte binary16 encoding of v in byte order
// o. The conversion truncates; see package float16.
func EncodeFloat16(v float32, o ByteOrder) []byte {
	return EncodeUint16(uint16(float16.FromFloat32(v)), o)
}

// DecodeFloat16 decodes a 2-byte binary16 sequence in byte order o.
func DecodeFloat16(b []byte, o ByteOrder) (float32, error) {
	v, err := DecodeUint16(b, o)
	if err != nil {
		return 0, err
	}
	return float16.Bits(v).Float32(), nil
}

// EncodeFloat32 returns the 4-byte IEEE 754 binary32 encoding of v in
// byte order o.
func EncodeFloat32(v float32, o ByteOrder) []byte {
	return EncodeUint32(math.Float32bits(v), o)
}

// DecodeFloat32 decodes a 4-byte binary32 sequence in byte order o.
func DecodeFloat32(b []byte, o ByteOrder) (float32, error) {
	v, err := DecodeUint32(b, o)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// EncodeFloat64 returns the 8-byte IEEE 754 binary64 encoding of v in
// byte order o.
func EncodeFloat64(v float64, o ByteOrder) []byte {
	return EncodeUint64(math.Float64bits(v), o)
}

// DecodeFloat64 decodes an 8-byte binary64 sequence in byte order o.
func DecodeFloat64(b []byte, o ByteOrder) (float64, error) {
	v, err := DecodeUint64(b, o)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

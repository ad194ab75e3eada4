package binstream

import (
	"encoding/binary"
	"fmt"
)

// A ByteOrder selects how the bytes of a multi-byte value are arranged:
// most significant byte first (BigEndian) or last (LittleEndian).
//
// The byte order affects only the arrangement of a value's bytes, never
// their count.
type ByteOrder uint8

const (
	// BigEndian writes the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian writes the least significant byte first.
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// byteOrder returns the encoding/binary implementation of o. Values
// outside the declared constants fall back to big-endian, the
// construction default.
func (o ByteOrder) byteOrder() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

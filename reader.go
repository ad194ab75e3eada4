package binstream

import (
	"fmt"
	"io"
	"math"

	"github.com/kaba4cow/binstream/float16"
)

// A Reader decodes values sequentially from an io.Reader.
//
// A Reader owns its source exclusively from construction until Close
// and is not safe for concurrent use. Every multi-byte read requires
// the full value to be present: a clean end of data before the first
// byte is io.EOF, a truncated value is io.ErrUnexpectedEOF. The
// position counter advances by the bytes actually consumed, including
// those of a failed partial read.
type Reader struct {
	r      io.Reader
	order  ByteOrder
	pos    int64
	closed bool
	buf    [8]byte
}

// NewReader returns a Reader on r, in big-endian byte order, at
// position 0.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, order: BigEndian}
}

// SetByteOrder changes the byte order used by subsequent reads.
func (r *Reader) SetByteOrder(o ByteOrder) { r.order = o }

// ByteOrder returns the byte order used by subsequent reads.
func (r *Reader) ByteOrder() ByteOrder { return r.order }

// Position returns the number of bytes consumed since construction.
func (r *Reader) Position() int64 { return r.pos }

// Read reads up to len(p) bytes from the source, implementing
// io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

// readFull fills p from the source, reporting a truncated fill as
// io.ErrUnexpectedEOF.
func (r *Reader) readFull(p []byte) error {
	if r.closed {
		return ErrClosed
	}
	n, err := io.ReadFull(r.r, p)
	r.pos += int64(n)
	return err
}

// ReadByte reads a single byte, implementing io.ByteReader. The
// position does not advance when the source is exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.readFull(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadUint8 reads 1 byte.
func (r *Reader) ReadUint8() (uint8, error) { return r.ReadByte() }

// ReadInt8 reads 1 byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadByte()
	return int8(v), err
}

// ReadBool reads 1 byte; any non-zero byte is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadByte()
	return v != 0, err
}

// ReadUint16 reads 2 bytes in the current byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.readFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return r.order.byteOrder().Uint16(r.buf[:2]), nil
}

// ReadInt16 reads 2 bytes in the current byte order.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads 4 bytes in the current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.readFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return r.order.byteOrder().Uint32(r.buf[:4]), nil
}

// ReadInt32 reads 4 bytes in the current byte order.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads 8 bytes in the current byte order.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.readFull(r.buf[:8]); err != nil {
		return 0, err
	}
	return r.order.byteOrder().Uint64(r.buf[:8]), nil
}

// ReadInt64 reads 8 bytes in the current byte order.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat16 reads a 2-byte binary16 pattern in the current byte order
// and expands it to a float32.
func (r *Reader) ReadFloat16() (float32, error) {
	v, err := r.ReadUint16()
	if err != nil {
		return 0, err
	}
	return float16.Bits(v).Float32(), nil
}

// ReadFloat32 reads a 4-byte IEEE 754 binary32 pattern in the current
// byte order.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an 8-byte IEEE 754 binary64 pattern in the current
// byte order.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytes reads exactly n bytes into a new slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := r.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadUint8Slice reads count bytes into a new slice.
func (r *Reader) ReadUint8Slice(count int) ([]uint8, error) {
	return r.ReadBytes(count)
}

// ReadFullUint8Slice fills dst from the source.
func (r *Reader) ReadFullUint8Slice(dst []uint8) error {
	return r.readFull(dst)
}

// ReadInt8Slice reads count values into a new slice.
func (r *Reader) ReadInt8Slice(count int) ([]int8, error) {
	s := make([]int8, count)
	if err := r.ReadFullInt8Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullInt8Slice fills dst in index order.
func (r *Reader) ReadFullInt8Slice(dst []int8) error {
	for i := range dst {
		v, err := r.ReadInt8()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadBoolSlice reads count values into a new slice.
func (r *Reader) ReadBoolSlice(count int) ([]bool, error) {
	s := make([]bool, count)
	if err := r.ReadFullBoolSlice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullBoolSlice fills dst in index order.
func (r *Reader) ReadFullBoolSlice(dst []bool) error {
	for i := range dst {
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadUint16Slice reads count values into a new slice.
func (r *Reader) ReadUint16Slice(count int) ([]uint16, error) {
	s := make([]uint16, count)
	if err := r.ReadFullUint16Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullUint16Slice fills dst in index order.
func (r *Reader) ReadFullUint16Slice(dst []uint16) error {
	for i := range dst {
		v, err := r.ReadUint16()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadInt16Slice reads count values into a new slice.
func (r *Reader) ReadInt16Slice(count int) ([]int16, error) {
	s := make([]int16, count)
	if err := r.ReadFullInt16Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullInt16Slice fills dst in index order.
func (r *Reader) ReadFullInt16Slice(dst []int16) error {
	for i := range dst {
		v, err := r.ReadInt16()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadUint32Slice reads count values into a new slice.
func (r *Reader) ReadUint32Slice(count int) ([]uint32, error) {
	s := make([]uint32, count)
	if err := r.ReadFullUint32Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullUint32Slice fills dst in index order.
func (r *Reader) ReadFullUint32Slice(dst []uint32) error {
	for i := range dst {
		v, err := r.ReadUint32()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadInt32Slice reads count values into a new slice.
func (r *Reader) ReadInt32Slice(count int) ([]int32, error) {
	s := make([]int32, count)
	if err := r.ReadFullInt32Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullInt32Slice fills dst in index order.
func (r *Reader) ReadFullInt32Slice(dst []int32) error {
	for i := range dst {
		v, err := r.ReadInt32()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadUint64Slice reads count values into a new slice.
func (r *Reader) ReadUint64Slice(count int) ([]uint64, error) {
	s := make([]uint64, count)
	if err := r.ReadFullUint64Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullUint64Slice fills dst in index order.
func (r *Reader) ReadFullUint64Slice(dst []uint64) error {
	for i := range dst {
		v, err := r.ReadUint64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadInt64Slice reads count values into a new slice.
func (r *Reader) ReadInt64Slice(count int) ([]int64, error) {
	s := make([]int64, count)
	if err := r.ReadFullInt64Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullInt64Slice fills dst in index order.
func (r *Reader) ReadFullInt64Slice(dst []int64) error {
	for i := range dst {
		v, err := r.ReadInt64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFloat16Slice reads count binary16 values into a new slice.
func (r *Reader) ReadFloat16Slice(count int) ([]float32, error) {
	s := make([]float32, count)
	if err := r.ReadFullFloat16Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullFloat16Slice fills dst in index order from binary16 values.
func (r *Reader) ReadFullFloat16Slice(dst []float32) error {
	for i := range dst {
		v, err := r.ReadFloat16()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFloat32Slice reads count values into a new slice.
func (r *Reader) ReadFloat32Slice(count int) ([]float32, error) {
	s := make([]float32, count)
	if err := r.ReadFullFloat32Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullFloat32Slice fills dst in index order.
func (r *Reader) ReadFullFloat32Slice(dst []float32) error {
	for i := range dst {
		v, err := r.ReadFloat32()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFloat64Slice reads count values into a new slice.
func (r *Reader) ReadFloat64Slice(count int) ([]float64, error) {
	s := make([]float64, count)
	if err := r.ReadFullFloat64Slice(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFullFloat64Slice fills dst in index order.
func (r *Reader) ReadFullFloat64Slice(dst []float64) error {
	for i := range dst {
		v, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadString reads exactly n raw bytes as a string.
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadStringVarying reads a uint32 byte length in the current byte
// order, then exactly that many raw bytes.
func (r *Reader) ReadStringVarying() (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	return r.ReadString(int(n))
}

// ReadStringTerminated accumulates bytes until a NUL or the end of the
// source; both terminate the string without error. The position counts
// every byte consumed, including the terminator.
func (r *Reader) ReadStringTerminated() (string, error) {
	if r.closed {
		return "", ErrClosed
	}
	var s []byte
	for {
		c, err := r.ReadByte()
		if err == io.EOF || (err == nil && c == 0) {
			return string(s), nil
		}
		if err != nil {
			return "", err
		}
		s = append(s, c)
	}
}

// ReadEnum reads an enumeration value of set and returns its ordinal.
// For EnumOrdinal it reads a 4-byte index and validates it against the
// declared list; for EnumName it reads a NUL-terminated name and looks
// it up exactly.
func (r *Reader) ReadEnum(set *EnumSet, format EnumFormat) (int, error) {
	switch format {
	case EnumOrdinal:
		v, err := r.ReadInt32()
		if err != nil {
			return 0, err
		}
		if _, err := set.Constant(int(v)); err != nil {
			return 0, err
		}
		return int(v), nil
	case EnumName:
		name, err := r.ReadStringTerminated()
		if err != nil {
			return 0, err
		}
		return set.Ordinal(name)
	default:
		return 0, fmt.Errorf("binstream: unknown enum format %s", format)
	}
}

// Skip discards n bytes without decoding them. The position reflects
// the bytes actually discarded; running out of data before n bytes is
// reported as io.ErrUnexpectedEOF.
func (r *Reader) Skip(n int64) error {
	if r.closed {
		return ErrClosed
	}
	if n <= 0 {
		return nil
	}
	m, err := io.CopyN(io.Discard, r.r, n)
	r.pos += m
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Close closes the source when it is an io.Closer. Close is idempotent;
// every other operation on a closed Reader returns ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package binstream

import (
	"fmt"
	"io"
	"math"

	"github.com/kaba4cow/binstream/float16"
)

// A Writer encodes values sequentially onto an io.Writer.
//
// A Writer owns its sink exclusively from construction until Close and
// is not safe for concurrent use. Every operation blocks until the sink
// completes the transfer or fails; failures propagate to the caller
// unmodified and are never retried. The position counter advances by
// the bytes actually transferred, so a failed multi-part write leaves
// it reflecting exactly what reached the sink.
type Writer struct {
	w      io.Writer
	order  ByteOrder
	pos    int64
	closed bool
	buf    [8]byte
}

// NewWriter returns a Writer on w, in big-endian byte order, at
// position 0.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, order: BigEndian}
}

// SetByteOrder changes the byte order used by subsequent writes. Bytes
// already written are unaffected.
func (w *Writer) SetByteOrder(o ByteOrder) { w.order = o }

// ByteOrder returns the byte order used by subsequent writes.
func (w *Writer) ByteOrder() ByteOrder { return w.order }

// Position returns the number of bytes written since construction.
func (w *Writer) Position() int64 { return w.pos }

// Write writes p verbatim, implementing io.Writer. An empty p does not
// touch the sink.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (w *Writer) write(p []byte) error {
	_, err := w.Write(p)
	return err
}

// WriteByte writes a single byte, implementing io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	w.buf[0] = c
	return w.write(w.buf[:1])
}

// WriteUint8 writes v as 1 byte.
func (w *Writer) WriteUint8(v uint8) error { return w.WriteByte(v) }

// WriteInt8 writes v as 1 byte.
func (w *Writer) WriteInt8(v int8) error { return w.WriteByte(byte(v)) }

// WriteBool writes v as 1 byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

// WriteUint16 writes v as 2 bytes in the current byte order.
func (w *Writer) WriteUint16(v uint16) error {
	w.order.byteOrder().PutUint16(w.buf[:2], v)
	return w.write(w.buf[:2])
}

// WriteInt16 writes v as 2 bytes in the current byte order.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteUint32 writes v as 4 bytes in the current byte order.
func (w *Writer) WriteUint32(v uint32) error {
	w.order.byteOrder().PutUint32(w.buf[:4], v)
	return w.write(w.buf[:4])
}

// WriteInt32 writes v as 4 bytes in the current byte order.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteUint64 writes v as 8 bytes in the current byte order.
func (w *Writer) WriteUint64(v uint64) error {
	w.order.byteOrder().PutUint64(w.buf[:8], v)
	return w.write(w.buf[:8])
}

// WriteInt64 writes v as 8 bytes in the current byte order.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteFloat16 writes v as a 2-byte binary16 pattern in the current
// byte order. The conversion truncates; see package float16.
func (w *Writer) WriteFloat16(v float32) error {
	return w.WriteUint16(uint16(float16.FromFloat32(v)))
}

// WriteFloat32 writes the 4-byte IEEE 754 binary32 pattern of v in the
// current byte order.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes the 8-byte IEEE 754 binary64 pattern of v in the
// current byte order.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteUint8Slice writes every element of s in index order. No length
// prefix is written; the slice writers leave length bookkeeping to the
// caller.
func (w *Writer) WriteUint8Slice(s []uint8) error {
	return w.write(s)
}

// WriteInt8Slice writes every element of s in index order.
func (w *Writer) WriteInt8Slice(s []int8) error {
	for _, v := range s {
		if err := w.WriteInt8(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteBoolSlice writes every element of s in index order.
func (w *Writer) WriteBoolSlice(s []bool) error {
	for _, v := range s {
		if err := w.WriteBool(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint16Slice writes every element of s in index order.
func (w *Writer) WriteUint16Slice(s []uint16) error {
	for _, v := range s {
		if err := w.WriteUint16(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt16Slice writes every element of s in index order.
func (w *Writer) WriteInt16Slice(s []int16) error {
	for _, v := range s {
		if err := w.WriteInt16(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint32Slice writes every element of s in index order.
func (w *Writer) WriteUint32Slice(s []uint32) error {
	for _, v := range s {
		if err := w.WriteUint32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt32Slice writes every element of s in index order.
func (w *Writer) WriteInt32Slice(s []int32) error {
	for _, v := range s {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint64Slice writes every element of s in index order.
func (w *Writer) WriteUint64Slice(s []uint64) error {
	for _, v := range s {
		if err := w.WriteUint64(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt64Slice writes every element of s in index order.
func (w *Writer) WriteInt64Slice(s []int64) error {
	for _, v := range s {
		if err := w.WriteInt64(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat16Slice writes every element of s in index order as
// binary16 patterns.
func (w *Writer) WriteFloat16Slice(s []float32) error {
	for _, v := range s {
		if err := w.WriteFloat16(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat32Slice writes every element of s in index order.
func (w *Writer) WriteFloat32Slice(s []float32) error {
	for _, v := range s {
		if err := w.WriteFloat32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat64Slice writes every element of s in index order.
func (w *Writer) WriteFloat64Slice(s []float64) error {
	for _, v := range s {
		if err := w.WriteFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteString writes the raw bytes of s with no length marker and no
// terminator. The reader must know the exact byte length out of band.
func (w *Writer) WriteString(s string) error {
	if w.closed {
		return ErrClosed
	}
	if len(s) == 0 {
		return nil
	}
	n, err := io.WriteString(w.w, s)
	w.pos += int64(n)
	if err == nil && n < len(s) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteStringVarying writes the byte length of s as a uint32 in the
// current byte order, followed by the raw bytes.
func (w *Writer) WriteStringVarying(s string) error {
	if err := w.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	return w.WriteString(s)
}

// WriteStringTerminated writes the raw bytes of s followed by a single
// NUL. A string containing an embedded NUL will not round-trip through
// ReadStringTerminated.
func (w *Writer) WriteStringTerminated(s string) error {
	if err := w.WriteString(s); err != nil {
		return err
	}
	return w.WriteByte(0)
}

// WriteEnum writes the constant at the given ordinal of set: its 4-byte
// 0-based index for EnumOrdinal, or its NUL-terminated name for
// EnumName. The ordinal is validated against the set before anything is
// written.
func (w *Writer) WriteEnum(set *EnumSet, ordinal int, format EnumFormat) error {
	name, err := set.Constant(ordinal)
	if err != nil {
		return err
	}
	switch format {
	case EnumOrdinal:
		return w.WriteInt32(int32(ordinal))
	case EnumName:
		return w.WriteStringTerminated(name)
	default:
		return fmt.Errorf("binstream: unknown enum format %s", format)
	}
}

// Flush forwards to the sink's Flush method when it has one.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if f, ok := w.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes buffered data and closes the sink when it is an
// io.Closer. Close is idempotent; every other operation on a closed
// Writer returns ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	err := w.Flush()
	w.closed = true
	if c, ok := w.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

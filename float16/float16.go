// Package float16 converts between IEEE 754 binary16 bit patterns and
// float32 values.
//
// The binary16 format uses 1 sign bit, 5 exponent bits (bias 15) and 10
// mantissa bits. The conversion from float32 is lossy: the mantissa is
// truncated to its top 10 bits, values too small for a normalized
// binary16 flush to signed zero, and values too large (as well as
// infinities and NaN) flush to signed infinity.
package float16

import "math"

// Bits is the bit pattern of a binary16 floating-point number.
type Bits uint16

const (
	signMask     Bits = 0x8000
	exponentMask Bits = 0x7c00
	mantissaMask Bits = 0x03ff
)

// FromFloat32 returns the binary16 pattern for f.
func FromFloat32(f float32) Bits {
	b := math.Float32bits(f)
	sign := Bits(b>>16) & signMask
	exp := int32(b>>23) & 0xff
	mantissa := b & 0x7fffff

	halfExp := exp - 127 + 15
	switch {
	case halfExp <= 0:
		// Too small for a normalized binary16. No subnormals are
		// produced on this path; flush to signed zero.
		return sign
	case halfExp >= 31:
		// Overflow, infinities and NaN.
		return sign | exponentMask
	}
	return sign | Bits(halfExp)<<10 | Bits(mantissa>>13)
}

// Float32 expands the binary16 pattern b to a float32.
//
// Exponent-31 patterns expand to signed infinity even when the mantissa
// is non-zero; use IsNaN to detect NaN payloads before expanding.
func (b Bits) Float32() float32 {
	sign := uint32(b&signMask) << 16
	exp := uint32(b>>10) & 0x1f
	mantissa := uint32(b & mantissaMask)
	switch exp {
	case 0:
		// Zero or a binary16 subnormal. The subnormal value
		// mantissa * 2^-10 * 2^-126 lands exactly in the binary32
		// subnormal range.
		return math.Float32frombits(sign | mantissa<<13)
	case 0x1f:
		return math.Float32frombits(sign | 0xff<<23)
	}
	return math.Float32frombits(sign | (exp-15+127)<<23 | mantissa<<13)
}

// Inf returns the binary16 pattern of positive infinity if sign >= 0,
// negative infinity if sign < 0.
func Inf(sign int) Bits {
	if sign < 0 {
		return signMask | exponentMask
	}
	return exponentMask
}

// IsInf reports whether b is an infinity.
func (b Bits) IsInf() bool {
	return b&(exponentMask|mantissaMask) == exponentMask
}

// IsNaN reports whether b is a NaN pattern.
func (b Bits) IsNaN() bool {
	return b&exponentMask == exponentMask && b&mantissaMask != 0
}

// Signbit reports whether the sign bit of b is set.
func (b Bits) Signbit() bool {
	return b&signMask != 0
}

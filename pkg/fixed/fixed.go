// Package fixed provides the integer fixed-point kernel for the ray tracer.
//
// Two widths share the same fractional scale of 12 bits:
//
//	Fixed16  4.12  int16  reals in [-8, 8), used for directions and colors
//	Fixed32 20.12  int32  world-space positions and intermediate results
//	Fixed64 52.12  int64  quadratic terms that outgrow 20.12
//
// The widths are distinct types. Converting between them always goes through
// a named method (To32 sign-extends, To16 truncates), never a raw cast.
package fixed

import (
	"fmt"
	"math"
)

// Shift is the number of fractional bits in both formats.
const Shift = 12

// Fixed16 is a signed 4.12 fixed-point value.
type Fixed16 int16

// Fixed32 is a signed 20.12 fixed-point value.
type Fixed32 int32

// Fixed64 is a signed 52.12 fixed-point value.
type Fixed64 int64

// Common 4.12 constants.
const (
	One16  Fixed16 = 1 << Shift
	Half16 Fixed16 = 1 << (Shift - 1)
	Two16  Fixed16 = 2 << Shift
	Four16 Fixed16 = 4 << Shift
)

// Common 20.12 constants.
const (
	One32  Fixed32 = 1 << Shift
	Half32 Fixed32 = 1 << (Shift - 1)
	Two32  Fixed32 = 2 << Shift
	Four32 Fixed32 = 4 << Shift
)

// FromFloat16 converts f to 4.12, rounding half away from zero.
// Values outside the representable range wrap.
func FromFloat16(f float64) Fixed16 {
	return Fixed16(int16(roundScaled(f)))
}

// FromFloat32 converts f to 20.12, rounding half away from zero.
func FromFloat32(f float64) Fixed32 {
	return Fixed32(int32(roundScaled(f)))
}

// roundScaled scales f by 4096 and adds +-0.5 before truncating, which is the
// rounding every golden value in the renderer is derived from.
func roundScaled(f float64) int64 {
	v := f * (1 << Shift)
	if f >= 0 {
		v += 0.5
	} else {
		v -= 0.5
	}
	return int64(v)
}

// Float returns the real value of a.
func (a Fixed16) Float() float64 {
	return float64(a) / (1 << Shift)
}

// Float returns the real value of a.
func (a Fixed32) Float() float64 {
	return float64(a) / (1 << Shift)
}

func (a Fixed16) String() string {
	return fmt.Sprintf("%.4f", a.Float())
}

func (a Fixed32) String() string {
	return fmt.Sprintf("%.4f", a.Float())
}

// To32 widens a to 20.12 (sign extension).
func (a Fixed16) To32() Fixed32 {
	return Fixed32(a)
}

// To64 widens a to 52.12.
func (a Fixed32) To64() Fixed64 {
	return Fixed64(a)
}

// To32 narrows a to 20.12. ok is false if a does not fit.
func (a Fixed64) To32() (v Fixed32, ok bool) {
	if a < math.MinInt32 || a > math.MaxInt32 {
		return 0, false
	}
	return Fixed32(a), true
}

// To16 narrows a to 4.12, keeping the low 16 bits.
func (a Fixed32) To16() Fixed16 {
	return Fixed16(int16(a))
}

// Mul returns a*b in 20.12. The product is formed in 32 bits, so it cannot
// overflow; the shift truncates toward negative infinity.
func (a Fixed16) Mul(b Fixed16) Fixed32 {
	return Fixed32((int32(a) * int32(b)) >> Shift)
}

// Mul returns a*b. The product is formed in 64 bits and truncated back to 32.
func (a Fixed32) Mul(b Fixed32) Fixed32 {
	return Fixed32(int32((int64(a) * int64(b)) >> Shift))
}

// MulShift multiplies two raw 16-bit values and shifts the product right by
// frac bits. It is used where an intermediate format other than 4.12 is needed.
func MulShift(a, b int16, frac uint) int32 {
	return (int32(a) * int32(b)) >> frac
}

// Div returns a/b in 20.12. It panics if b is zero.
func (a Fixed16) Div(b Fixed16) Fixed32 {
	return Fixed32((int32(a) << Shift) / int32(b))
}

// Div returns a/b. The dividend is widened to 64 bits before the shift.
// It panics if b is zero.
func (a Fixed32) Div(b Fixed32) Fixed32 {
	return Fixed32(int32((int64(a) << Shift) / int64(b)))
}

// Sqrt returns the fixed-point square root of a, rounded down.
// a must not be negative.
func (a Fixed32) Sqrt() Fixed32 {
	if a < 0 {
		panic(fmt.Sprintf("fixed: square root of negative value %d", int32(a)))
	}
	return Fixed32(isqrt(uint64(a) << Shift))
}

// Mul returns a*b. |a*b| must stay below 2^63 before the shift.
func (a Fixed64) Mul(b Fixed64) Fixed64 {
	return (a * b) >> Shift
}

// Div returns a/b, truncated toward zero. It panics if b is zero.
func (a Fixed64) Div(b Fixed64) Fixed64 {
	return (a << Shift) / b
}

// Sqrt returns the square root of a, rounded down. Values too large to be
// shifted first lose the low 6 fractional bits of the root.
// a must not be negative.
func (a Fixed64) Sqrt() Fixed64 {
	if a < 0 {
		panic(fmt.Sprintf("fixed: square root of negative value %d", int64(a)))
	}
	if a >= 1<<(63-Shift) {
		return Fixed64(isqrt(uint64(a)) << (Shift / 2))
	}
	return Fixed64(isqrt(uint64(a) << Shift))
}

// Pow returns a raised to the integer power n by repeated multiplication.
// Non-positive exponents yield One32.
func (a Fixed32) Pow(n int) Fixed32 {
	r := One32
	for range n {
		r = r.Mul(a)
	}
	return r
}

// Clamp limits a to [lo, hi].
func (a Fixed16) Clamp(lo, hi Fixed16) Fixed16 {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Max returns the larger of a and b.
func (a Fixed32) Max(b Fixed32) Fixed32 {
	if a > b {
		return a
	}
	return b
}

// isqrt returns floor(sqrt(n)) using the binary digit-by-digit method.
func isqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

package fixed

import "math/bits"

// Vec16 is a 3D vector of 4.12 components.
type Vec16 struct {
	X, Y, Z Fixed16
}

// Vec32 is a 3D vector of 20.12 components.
type Vec32 struct {
	X, Y, Z Fixed32
}

// V16 creates a new Vec16.
func V16(x, y, z Fixed16) Vec16 {
	return Vec16{x, y, z}
}

// V32 creates a new Vec32.
func V32(x, y, z Fixed32) Vec32 {
	return Vec32{x, y, z}
}

// V16F creates a Vec16 from real components.
func V16F(x, y, z float64) Vec16 {
	return Vec16{FromFloat16(x), FromFloat16(y), FromFloat16(z)}
}

// V32F creates a Vec32 from real components.
func V32F(x, y, z float64) Vec32 {
	return Vec32{FromFloat32(x), FromFloat32(y), FromFloat32(z)}
}

// To32 widens every component.
func (a Vec16) To32() Vec32 {
	return Vec32{a.X.To32(), a.Y.To32(), a.Z.To32()}
}

// To16 narrows every component, keeping the low 16 bits.
func (a Vec32) To16() Vec16 {
	return Vec16{a.X.To16(), a.Y.To16(), a.Z.To16()}
}

// IsZero reports whether all components are zero.
func (a Vec16) IsZero() bool {
	return a == Vec16{}
}

// Add returns the vector sum a + b.
func (a Vec16) Add(b Vec16) Vec16 {
	return Vec16{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec16) Sub(b Vec16) Vec16 {
	return Vec16{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a * s. Each product is narrowed back to 4.12.
func (a Vec16) Scale(s Fixed16) Vec16 {
	return Vec16{a.X.Mul(s).To16(), a.Y.Mul(s).To16(), a.Z.Mul(s).To16()}
}

// Times returns a added to itself n times.
func (a Vec16) Times(n int) Vec16 {
	k := Fixed16(n)
	return Vec16{a.X * k, a.Y * k, a.Z * k}
}

// Negate returns the two's complement of each component.
func (a Vec16) Negate() Vec16 {
	return Vec16{-a.X, -a.Y, -a.Z}
}

// Dot returns a · b accumulated in 20.12.
func (a Vec16) Dot(b Vec16) Fixed32 {
	return a.X.Mul(b.X) + a.Y.Mul(b.Y) + a.Z.Mul(b.Z)
}

// Normalize returns the unit vector in the same direction. The zero vector
// normalizes to the zero vector.
func (a Vec16) Normalize() Vec16 {
	return a.To32().Normalize()
}

// Reflect returns the reflection of a around normal n.
func (a Vec16) Reflect(n Vec16) Vec16 {
	s := Two32.Mul(a.Dot(n))
	return a.Sub(n.Scale(s.To16()))
}

// Clamp limits every component to [lo, hi].
func (a Vec16) Clamp(lo, hi Fixed16) Vec16 {
	return Vec16{a.X.Clamp(lo, hi), a.Y.Clamp(lo, hi), a.Z.Clamp(lo, hi)}
}

// Add returns the vector sum a + b.
func (a Vec32) Add(b Vec32) Vec32 {
	return Vec32{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec32) Sub(b Vec32) Vec32 {
	return Vec32{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a * s.
func (a Vec32) Scale(s Fixed32) Vec32 {
	return Vec32{a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s)}
}

// Negate returns the two's complement of each component.
func (a Vec32) Negate() Vec32 {
	return Vec32{-a.X, -a.Y, -a.Z}
}

// Dot returns a · b. Products and the sum are kept in 64 bits.
func (a Vec32) Dot(b Vec32) Fixed32 {
	return Fixed32(int32(a.Dot64(b)))
}

// Dot64 returns a · b without narrowing the result to 20.12.
func (a Vec32) Dot64(b Vec32) Fixed64 {
	return Fixed64((int64(a.X)*int64(b.X))>>Shift +
		(int64(a.Y)*int64(b.Y))>>Shift +
		(int64(a.Z)*int64(b.Z))>>Shift)
}

// Normalize returns the unit vector in the same direction as a 4.12 vector.
// The zero vector normalizes to the zero vector.
//
// The components are first shifted up so the largest has 30 significant
// bits; the length is then taken from the exact sum of squares and each
// component is divided with rounding. Any Vec32, however short or long,
// normalizes to within half an LSB per component.
func (a Vec32) Normalize() Vec16 {
	x, y, z := int64(a.X), int64(a.Y), int64(a.Z)
	m := max(abs64(x), abs64(y), abs64(z))
	if m == 0 {
		return Vec16{}
	}
	if s := 30 - bits.Len64(uint64(m)); s > 0 {
		x, y, z = x<<s, y<<s, z<<s
	}
	l := int64(isqrt(uint64(x*x) + uint64(y*y) + uint64(z*z)))
	return Vec16{
		Fixed16(roundDiv(x<<Shift, l)),
		Fixed16(roundDiv(y<<Shift, l)),
		Fixed16(roundDiv(z<<Shift, l)),
	}
}

// Reflect returns the reflection of a around the unit normal n.
func (a Vec32) Reflect(n Vec16) Vec32 {
	n32 := n.To32()
	s := Two32.Mul(a.Dot(n32))
	return a.Sub(n32.Scale(s))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// roundDiv returns n/d rounded half away from zero. d must be positive.
func roundDiv(n, d int64) int64 {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}

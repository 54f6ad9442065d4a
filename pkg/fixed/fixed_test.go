package fixed

import (
	"math"
	"testing"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Fixed16
	}{
		{"one", 1.0, One16},
		{"half", 0.5, Half16},
		{"negative half", -0.5, -Half16},
		{"aspect 4:3", 2.0 * 320 / 240, 10923},
		{"inverse width", 1.0 / 320, 13},
		{"inverse height", 1.0 / 240, 17},
		{"rounds away from zero", -0.5 / 4096, -1},
		{"rounds down below half", 0.4 / 4096, 0},
		{"max", 7.99975, 32767},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromFloat16(tc.in); got != tc.want {
				t.Errorf("FromFloat16(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}

	if got := FromFloat32(-10); got != -40960 {
		t.Errorf("FromFloat32(-10) = %d, want -40960", got)
	}
	if got := FromFloat32(1000.25); got != 4097024 {
		t.Errorf("FromFloat32(1000.25) = %d, want 4097024", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.25, -3.5, 7.5, -8} {
		if got := FromFloat16(f).Float(); got != f {
			t.Errorf("FromFloat16(%v).Float() = %v", f, got)
		}
		if got := FromFloat32(f).Float(); got != f {
			t.Errorf("FromFloat32(%v).Float() = %v", f, got)
		}
	}
}

func TestWidthConversion(t *testing.T) {
	if got := Fixed16(-2048).To32(); got != -2048 {
		t.Errorf("To32 sign extension = %d, want -2048", got)
	}
	if got := Fixed32(5000).To16(); got != 5000 {
		t.Errorf("To16 in range = %d, want 5000", got)
	}
	// 10.0 does not fit in 4.12; narrowing keeps the low 16 bits.
	if got := Fixed32(10 << Shift).To16(); got != -24576 {
		t.Errorf("To16 wrap = %d, want -24576", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Fixed16
		want Fixed32
	}{
		{"one by one", One16, One16, One32},
		{"half by half", Half16, Half16, 1024},
		{"negative", -One16, Half16, -Half32},
		{"truncates toward negative infinity", -1, 1, -1},
		{"positive underflow", 1, 1, 0},
		{"no 16-bit overflow", 4 * One16, 4 * One16, 16 * One32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Mul(tc.b); got != tc.want {
				t.Errorf("%d.Mul(%d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}

	t.Run("wide", func(t *testing.T) {
		a := FromFloat32(100)
		if got := a.Mul(a); got != FromFloat32(10_000) {
			t.Errorf("100*100 = %v, want 10000", got)
		}
	})
}

func TestMulShift(t *testing.T) {
	if got := MulShift(82, 255<<7, 7); got != 20910 {
		t.Errorf("MulShift(82, 255<<7, 7) = %d, want 20910", got)
	}
	if got := MulShift(-3, 1<<7, 7); got != -3 {
		t.Errorf("MulShift(-3, 1<<7, 7) = %d, want -3", got)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Fixed32
		want Fixed32
	}{
		{"one by two", One32, Two32, Half32},
		{"two by half", Two32, Half32, Four32},
		{"truncates toward zero", -One32, 3 << Shift, -1365},
		{"sphere root", 16026, 8192, 8013},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Div(tc.b); got != tc.want {
				t.Errorf("%d.Div(%d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}

	if got := One16.Div(Four16); got != 1024 {
		t.Errorf("Fixed16 1/4 = %d, want 1024", got)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic dividing by zero")
		}
	}()
	_ = One32.Div(0)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want Fixed32
	}{
		{0, 0},
		{One32, One32},
		{Four32, Two32},
		{Two32, 5792},
		{32, 362},
		{FromFloat32(10000), FromFloat32(100)},
	}

	for _, tc := range tests {
		got := tc.in.Sqrt()
		if got != tc.want {
			t.Errorf("Sqrt(%d) = %d, want %d", tc.in, got, tc.want)
		}
		// Floor: got^2 <= in < (got+1)^2 in 24-bit fraction space.
		n := uint64(tc.in) << Shift
		if g := uint64(got); g*g > n || (g+1)*(g+1) <= n {
			t.Errorf("Sqrt(%d) = %d is not the floor root", tc.in, got)
		}
	}
}

func TestSqrtNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative input")
		}
	}()
	_ = Fixed32(-1).Sqrt()
}

func TestFixed64(t *testing.T) {
	big := FromFloat32(3000).To64()
	sq := big.Mul(big)
	if want := Fixed64(9_000_000) << Shift; sq != want {
		t.Errorf("3000 * 3000 = %d, want %d", sq, want)
	}
	if got := sq.Div(big); got != big {
		t.Errorf("9e6 / 3000 = %d, want %d", got, big)
	}
	if got := sq.Sqrt(); got != big {
		t.Errorf("Sqrt(9e6) = %d, want %d", got, big)
	}
	// Too large to shift first: the root keeps 6 fractional bits.
	huge := Fixed64(1) << 60
	if got, want := huge.Sqrt(), Fixed64(1)<<36; got != want {
		t.Errorf("Sqrt(2^60) = %d, want %d", got, want)
	}

	tests := []struct {
		in Fixed64
		ok bool
	}{
		{Fixed64(One32), true},
		{Fixed64(math.MaxInt32), true},
		{Fixed64(math.MinInt32), true},
		{Fixed64(math.MaxInt32) + 1, false},
		{Fixed64(math.MinInt32) - 1, false},
	}
	for _, tc := range tests {
		got, ok := tc.in.To32()
		if ok != tc.ok {
			t.Errorf("To32(%d) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && Fixed64(got) != tc.in {
			t.Errorf("To32(%d) = %d", tc.in, got)
		}
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		x    Fixed32
		n    int
		want Fixed32
	}{
		{"zero exponent", Half32, 0, One32},
		{"square", Half32, 2, 1024},
		{"cube", Two32, 3, 8 * One32},
		{"specular falloff", 947, 16, 0},
		{"one stays one", One32, 16, One32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.x.Pow(tc.n); got != tc.want {
				t.Errorf("%d.Pow(%d) = %d, want %d", tc.x, tc.n, got, tc.want)
			}
		})
	}
}

func TestClampAndMax(t *testing.T) {
	if got := Fixed16(-5).Clamp(0, One16); got != 0 {
		t.Errorf("Clamp below = %d", got)
	}
	if got := (One16 + 10).Clamp(0, One16); got != One16 {
		t.Errorf("Clamp above = %d", got)
	}
	if got := Fixed32(-3).Max(0); got != 0 {
		t.Errorf("Max = %d", got)
	}
}

func TestString(t *testing.T) {
	if got := Half16.String(); got != "0.5000" {
		t.Errorf("String() = %q", got)
	}
	if got := FromFloat32(-2.25).String(); got != "-2.2500" {
		t.Errorf("String() = %q", got)
	}
}

func TestMulMatchesFloat(t *testing.T) {
	for a := -8.0; a < 8; a += 0.37 {
		for b := -8.0; b < 8; b += 0.41 {
			got := FromFloat16(a).Mul(FromFloat16(b)).Float()
			want := FromFloat16(a).Float() * FromFloat16(b).Float()
			if math.Abs(got-want) > 1.0/4096 {
				t.Fatalf("%v*%v = %v, want %v", a, b, got, want)
			}
		}
	}
}

// Package fixedpoint provides the integer-only trigonometry and exponential
// approximations used to derive filter coefficients. The functions are only
// ever called at configuration time so accuracy matters more than speed, but
// the fixed point rounding of the results directly determines the filter
// cutoff points and should not be disturbed.
//
// Angles are 14-bit "turn" values: the range 0 to 16383 covers one full
// cycle of 2π. Sine and cosine results are scaled to 15-bit amplitude.
// Values for the exponential carry an 11-bit fraction.
package fixedpoint

// the 14-bit angle domain
const (
	Turn     = 16384
	HalfTurn = Turn / 2
	turnMask = Turn - 1
)

// significant points on a quarter of the sine wave at 15-bit amplitude. the
// extra entry at the end means interpolation just past the crest of the wave
// never reads out of bounds
var sigpsin15 = [18]int{
	0x0000,
	0x0c88, 0x18f8, 0x2528, 0x30f8, 0x3c50, 0x4718, 0x5130, 0x5a80,
	0x62f0, 0x6a68, 0x70e0, 0x7640, 0x7a78, 0x7d88, 0x7f60, 0x8000,
	0x7f60,
}

// linear interpolation between adjacent table entries. the low 8 bits of n
// are the fractional weight
func sintabil8(n int) int {
	f := n & 0xff
	i := (n >> 8) & 0xff
	a := sigpsin15[i]
	b := sigpsin15[i+1]
	return a + (((b - a) * f) >> 8)
}

// SinCos returns the sine and cosine of the 14-bit angle n simultaneously.
// the quarter wave table is reconstructed into a full circle by quadrant
// mirroring and sign flips
func SinCos(n int) (sin int, cos int) {
	n &= turnMask
	h := n & (HalfTurn - 1)

	if h > (Turn>>2)-1 {
		cos = -sintabil8(h - (Turn >> 2))
		sin = sintabil8(HalfTurn - h)
	} else {
		cos = sintabil8((Turn >> 2) - h)
		sin = sintabil8(h)
	}
	if n > HalfTurn-1 {
		cos = -cos
		sin = -sin
	}
	return sin, cos
}

// fixed point representation used by Exp and by the filter coefficients
// derived from it
const (
	Prec = 11
	One  = 1 << Prec
	mask = One - 1

	// π in the same representation
	Pi = 6434
)

// Mul multiplies two fixed point values
func Mul(x, y int) int {
	return (x * y) >> Prec
}

// Div divides one fixed point value by another
func Div(x, y int) int {
	return (x << Prec) / y
}

// powers of e with an 11-bit fraction
var e11 = [5]int{
	One,
	5567,   // e
	15133,  // e^2
	41135,  // e^3
	111817, // e^4
}

// Exp computes e^n for a fixed point n, which may be negative
func Exp(n int) int {
	if n == 0 {
		return One
	}

	neg := n < 0
	if neg {
		n = -n
	}

	// the integer part is handled in groups of four by repeated
	// multiplication with e^4, with a final multiply for the remainder
	idx := n >> Prec
	res := One
	for i := 0; i < idx/4; i++ {
		res = Mul(res, e11[4])
	}
	idx &= 3
	if idx > 0 {
		res = Mul(res, e11[idx])
	}

	// truncated power series for the fractional part. the series stops once
	// a term rounds to nothing or an intermediate is about to wrap
	n &= mask
	nxt := One
	acc := 0
	del := 1
	for i := 1; i < 17; i++ {
		acc += nxt / del
		nxt = Mul(nxt, n)
		del *= i
		if del > nxt || nxt <= 0 || del <= 0 {
			break
		}
	}
	res = Mul(res, acc)

	if neg {
		res = Div(One, res)
	}
	return res
}

package filter

import "github.com/jetsetilly/crtemu/crt/fixedpoint"

// LowPass is a single pole infinite impulse response low pass filter
type LowPass struct {
	c int
	h int
}

// NewLowPass creates a low pass filter. freq is the total bandwidth of the
// signal and limit is the highest frequency to be passed
func NewLowPass(freq int, limit int) LowPass {
	// cycles/pixel rate
	rate := (freq << 9) / limit
	return LowPass{
		c: fixedpoint.One - fixedpoint.Exp(-((fixedpoint.Pi << 9) / rate)),
	}
}

// Reset zeroes the filter history. the coefficient is unaffected
func (f *LowPass) Reset() {
	f.h = 0
}

// Process filters a single sample
func (f *LowPass) Process(s int) int {
	f.h += fixedpoint.Mul(s-f.h, f.c)
	return f.h
}

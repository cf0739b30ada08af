package filter

import "github.com/jetsetilly/crtemu/crt/fixedpoint"

const (
	histlen = 3
	histold = histlen - 1 // oldest entry
	histnew = 0           // newest entry

	// fixed point precision of the equalizer. the gains supplied to
	// NewEqualizer are scaled by this precision so changing it means
	// adjusting every gain too
	eqPrec  = 16
	eqRound = 1 << (eqPrec - 1)
)

// Equalizer is a three band graphic equalizer. the input is split into low,
// mid and high bands by a pair of one pole smoothing cascades, each band is
// scaled by its own gain and the results summed. the high band carries a
// group delay of histlen-1 samples
type Equalizer struct {
	lf, hf int    // crossover fractions
	g      [3]int // band gains

	// four stage smoothing cascades for the low and high crossover points
	fL [4]int
	fH [4]int

	// raw sample history
	h [histlen]int
}

// NewEqualizer creates an equalizer with crossover frequencies lo and hi at
// the given sampling rate. the three band gains are fractions with an
// eqPrec bit fraction
func NewEqualizer(lo, hi, rate int, gLo, gMid, gHi int) Equalizer {
	f := Equalizer{
		g: [3]int{gLo, gMid, gHi},
	}

	sn, _ := fixedpoint.SinCos(fixedpoint.HalfTurn * lo / rate)
	f.lf = 2 * (sn << (eqPrec - 15))
	sn, _ = fixedpoint.SinCos(fixedpoint.HalfTurn * hi / rate)
	f.hf = 2 * (sn << (eqPrec - 15))

	return f
}

// Reset zeroes the cascades and the sample history. gains and crossover
// coefficients are unaffected
func (f *Equalizer) Reset() {
	f.fL = [4]int{}
	f.fH = [4]int{}
	f.h = [histlen]int{}
}

// Process filters a single sample
func (f *Equalizer) Process(s int) int {
	f.fL[0] += (f.lf*(s-f.fL[0]) + eqRound) >> eqPrec
	f.fH[0] += (f.hf*(s-f.fH[0]) + eqRound) >> eqPrec

	for i := 1; i < 4; i++ {
		f.fL[i] += (f.lf*(f.fL[i-1]-f.fL[i]) + eqRound) >> eqPrec
		f.fH[i] += (f.hf*(f.fH[i-1]-f.fH[i]) + eqRound) >> eqPrec
	}

	// low band is the last stage of the low cascade; mid band the
	// difference between the two cascades; high band the difference between
	// the oldest raw sample and the high cascade
	r0 := (f.fL[3] * f.g[0]) >> eqPrec
	r1 := ((f.fH[3] - f.fL[3]) * f.g[1]) >> eqPrec
	r2 := ((f.h[histold] - f.fH[3]) * f.g[2]) >> eqPrec

	for i := histold; i > 0; i-- {
		f.h[i] = f.h[i-1]
	}
	f.h[histnew] = s

	return r0 + r1 + r2
}

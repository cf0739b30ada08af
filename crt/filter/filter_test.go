package filter_test

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/jetsetilly/crtemu/crt/filter"
	"github.com/jetsetilly/crtemu/test"
)

// the crossover points used by the luma equalizer: 1.5MHz and 3MHz of the
// 14.31818MHz line, expressed as line samples
const (
	eqLo   = 95
	eqHi   = 190
	eqRate = 910
)

func TestLowPassConvergence(t *testing.T) {
	f := filter.NewLowPass(1431818, 420000)
	var out int
	for range 1000 {
		out = f.Process(100)
	}

	// the filter settles on the input level, give or take the fixed point
	// deadband of the smoothing step
	test.ExpectApproximate(t, out, 100, 2)
}

func TestLowPassReset(t *testing.T) {
	f := filter.NewLowPass(1431818, 150000)

	seq := make([]int, 200)
	for i := range seq {
		seq[i] = rand.IntN(251) - 127
	}

	a := make([]int, len(seq))
	for i, s := range seq {
		a[i] = f.Process(s)
	}

	f.Reset()

	for i, s := range seq {
		test.ExpectEquality(t, f.Process(s), a[i])
	}
}

func TestLowPassResponse(t *testing.T) {
	f := filter.NewLowPass(1431818, 420000)

	// impulse response of the filter
	resp := make([]float64, 256)
	resp[0] = float64(f.Process(1024))
	for i := 1; i < len(resp); i++ {
		resp[i] = float64(f.Process(0))
	}

	fft := fourier.NewFFT(len(resp))
	coeff := fft.Coefficients(nil, resp)

	// energy at the top of the band is well down on the DC response
	dc := cmplx.Abs(coeff[0])
	hi := cmplx.Abs(coeff[len(coeff)-1])
	test.ExpectSuccess(t, hi < dc/2)
}

func TestEqualizerReset(t *testing.T) {
	f := filter.NewEqualizer(eqLo, eqHi, eqRate, 65536, 8192, 9175)

	seq := make([]int, 500)
	for i := range seq {
		seq[i] = rand.IntN(151) - 40
	}

	a := make([]int, len(seq))
	for i, s := range seq {
		a[i] = f.Process(s)
	}

	f.Reset()

	// identical input after a reset produces identical output. no state
	// leaks between scanlines
	for i, s := range seq {
		test.ExpectEquality(t, f.Process(s), a[i])
	}
}

func TestEqualizerBandSum(t *testing.T) {
	// with unity gains the three bands recombine into the input exactly,
	// delayed by the length of the raw sample history
	f := filter.NewEqualizer(eqLo, eqHi, eqRate, 65536, 65536, 65536)

	tone := make([]int, 500)
	for i := range tone {
		tone[i] = int(50 * math.Sin(2*math.Pi*float64(i)/32))
	}

	out := make([]int, len(tone))
	for i, s := range tone {
		out[i] = f.Process(s)
	}

	for i := 2; i < len(tone); i++ {
		test.ExpectEquality(t, out[i], tone[i-2])
	}
}

func TestEqualizerBandSplit(t *testing.T) {
	// a low frequency tone survives a low-only gain configuration, a tone
	// above the high crossover mostly does not
	f := filter.NewEqualizer(eqLo, eqHi, eqRate, 65536, 0, 0)

	energy := func(period int) float64 {
		f.Reset()
		var e float64
		for i := range 1000 {
			s := int(100 * math.Sin(2*math.Pi*float64(i)/float64(period)))
			o := f.Process(s)
			if i > 500 {
				e += float64(o) * float64(o)
			}
		}
		return e
	}

	lo := energy(128)
	hi := energy(4)
	test.ExpectSuccess(t, hi < lo/16)
}

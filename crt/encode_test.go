package crt

import (
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/jetsetilly/crtemu/test"
)

// a single row of alternating black and white columns. the alternation
// makes sure the active video carries real signal without relying on any
// particular scaling
func stripeSettings(color bool) Settings {
	src := make([]int32, 8)
	for i := 0; i < len(src); i += 2 {
		src[i] = 0xffffff
	}
	return Settings{
		RGB:   src,
		W:     8,
		H:     1,
		Color: color,
	}
}

func TestEncodeBurst(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	c.Encode(stripeSettings(true))

	// every ordinary video line carries exactly cbCycles cycles of the
	// four valued burst pattern at the burst offset
	for _, line := range []int{15, 100, 200, VRes - 1} {
		for i := 0; i < cbCycles*CBFreq; i++ {
			want := int8(blankLevel + cc[(CBBeg+i)&3]*burstLevel)
			test.ExpectEquality(t, c.analog[line*HRes+CBBeg+i], want)
		}

		// and the sample after the burst window is blank again
		test.ExpectEquality(t, c.analog[line*HRes+CBBeg+cbCycles*CBFreq], int8(blankLevel))
	}
}

func TestEncodeBurstDisabled(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	c.Encode(stripeSettings(false))

	for i := 0; i < cbCycles*CBFreq; i++ {
		test.ExpectEquality(t, c.analog[100*HRes+CBBeg+i], int8(blankLevel))
	}
}

func TestEncodeBurstSpectrum(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	c.Encode(stripeSettings(true))

	// the burst is a pure tone with a period of CBFreq samples
	n := cbCycles * CBFreq
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(c.analog[100*HRes+CBBeg+i])
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, data)

	peak := 0
	for i := 1; i < len(coeff); i++ {
		if cmplx.Abs(coeff[i]) > cmplx.Abs(coeff[peak]) {
			peak = i
		}
	}
	test.ExpectEquality(t, peak, n/CBFreq)
}

func TestEncodeSyncLevels(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	c.Encode(stripeSettings(true))

	// ordinary video line: blank front porch, sync tip, blank to the
	// start of active video
	line := c.analog[100*HRes:]
	for i := 0; i < SyncBeg; i++ {
		test.ExpectEquality(t, line[i], int8(blankLevel))
	}
	for i := SyncBeg; i < bwBeg; i++ {
		test.ExpectEquality(t, line[i], int8(syncLevel))
	}
	for i := bwBeg; i < CBBeg; i++ {
		test.ExpectEquality(t, line[i], int8(blankLevel))
	}
}

func TestEncodeFieldSerration(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	s := stripeSettings(true)

	// the serration pulses in the vertical sync block begin at different
	// points in the two fields. sample a point early in line 4: still sync
	// in the even field, already blank in the odd field
	probe := 4*HRes + HRes/10

	s.Field = 0
	c.Encode(s)
	test.ExpectEquality(t, c.analog[probe], int8(syncLevel))

	s.Field = 1
	c.Encode(s)
	test.ExpectEquality(t, c.analog[probe], int8(blankLevel))
}

func TestEncodeAlignment(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	src := []int32{0xffffff, 0xffffff, 0xffffff, 0xffffff}
	c.Encode(Settings{RGB: src, W: 2, H: 2, Color: false})

	// the first rendered sample of a visible row sits on a 4 sample
	// boundary, keeping the subcarrier phase consistent
	desth := (Lines * 63500) >> 16
	yo := Top + 4 + (Lines-desth)/2
	row := c.analog[yo*HRes : (yo+1)*HRes]

	first := -1
	for x := AVBeg; x < HRes; x++ {
		if row[x] != blankLevel {
			first = x
			break
		}
	}
	test.ExpectSuccess(t, first != -1)
	test.ExpectEquality(t, first&3, 0)
}

func TestEncodeActiveRange(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	src := []int32{0xffffff, 0xffffff, 0xffffff, 0xffffff}
	c.Encode(Settings{RGB: src, W: 2, H: 2, Color: true})

	// composite samples in the active video region never leave [0,110]
	// whatever the source image
	for n := Top; n < Bot; n++ {
		for x := AVBeg; x < AVBeg+AVLen; x++ {
			v := c.analog[n*HRes+x]
			test.ExpectSuccess(t, v >= 0 && v <= 110)
		}
	}
}

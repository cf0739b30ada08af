package crt

import (
	"testing"

	"github.com/jetsetilly/crtemu/test"
)

func TestTimingPartition(t *testing.T) {
	// the pulses partition the scanline in the documented order
	test.ExpectSuccess(t, 0 < SyncBeg)
	test.ExpectSuccess(t, SyncBeg < bwBeg)
	test.ExpectSuccess(t, bwBeg < CBBeg)
	test.ExpectSuccess(t, CBBeg < AVBeg)
	test.ExpectSuccess(t, AVBeg+AVLen <= HRes)

	// the colour burst fits inside its window
	test.ExpectSuccess(t, CBBeg+cbCycles*CBFreq <= AVBeg)

	// active video occupies most of the line, in proportion with the
	// nanosecond budget
	test.ExpectEquality(t, AVLen, avNS*HRes/lineNS)
	test.ExpectSuccess(t, AVLen > HRes*3/4)

	test.ExpectEquality(t, Lines, Bot-Top)
	test.ExpectEquality(t, InputSize, HRes*VRes)
}

func TestNew(t *testing.T) {
	out := make([]int32, 100*100)
	c, err := New(100, 100, out)
	test.ExpectEquality(t, err, nil)

	// default calibration
	test.ExpectEquality(t, c.Saturation, 18)
	test.ExpectEquality(t, c.Brightness, 0)
	test.ExpectEquality(t, c.Contrast, 179)
	test.ExpectEquality(t, c.BlackPoint, 0)
	test.ExpectEquality(t, c.WhitePoint, 100)
	test.ExpectEquality(t, c.hsync, 0)
	test.ExpectEquality(t, c.vsync, 0)
}

func TestNewBadDimensions(t *testing.T) {
	_, err := New(0, 100, nil)
	test.ExpectSuccess(t, err != nil)

	_, err = New(100, -1, nil)
	test.ExpectSuccess(t, err != nil)

	// buffer too small for the dimensions
	_, err = New(100, 100, make([]int32, 99*100))
	test.ExpectSuccess(t, err != nil)
}

func TestReset(t *testing.T) {
	out := make([]int32, 64*64)
	c, err := New(64, 64, out)
	test.ExpectEquality(t, err, nil)

	c.Saturation = 50
	c.Contrast = 99
	c.hsync = 123
	c.vsync = 45

	c.Reset()
	test.ExpectEquality(t, c.Saturation, 18)
	test.ExpectEquality(t, c.Contrast, 179)
	test.ExpectEquality(t, c.hsync, 0)
	test.ExpectEquality(t, c.vsync, 0)
}

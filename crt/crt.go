// Package crt emulates analog NTSC composite video. Encode converts an RGB
// framebuffer into one frame of synthetic analog signal and Decode recovers
// a degraded, CRT realistic image from that signal, complete with sync
// tracking, chroma demodulation, noise, beam bloom and phosphor ghosting.
//
// A CRT is not safe for concurrent use: Decode mutates the bound output
// buffer and the sync tracking state, and Encode overwrites the analog
// signal buffer.
package crt

import (
	"fmt"

	"github.com/jetsetilly/crtemu/crt/filter"
)

// CRT holds the calibration, the synthesised signal, and the state that
// carries from one frame to the next
type CRT struct {
	// calibration. these can be adjusted freely between calls to Encode
	// and Decode
	Saturation int
	Brightness int
	Contrast   int
	BlackPoint int
	WhitePoint int

	// sync tracking state carried from one Decode call to the next. the
	// previous offsets seed the next search windows, which is what gives
	// the tracker its drift tolerance
	hsync int
	vsync int

	// the synthesised composite signal, fully overwritten by Encode
	analog [InputSize]int8

	// the noise perturbed copy of the analog signal, rebuilt by every
	// Decode. padded by a scanline so the sync searches can run off the
	// bottom of the frame without wrapping
	inp [InputSize + HRes]int8

	// noise generator state
	rn int32

	// decoded YIQ values for one scanline, before resampling to the
	// output width
	scan [AVLen + 1]yiq

	// the output image. pixels are packed 0xRRGGBB
	out  []int32
	outw int
	outh int

	// one filter instance per channel for each filter kind. coefficients
	// are fixed at creation, history is reset per row/scanline
	iirY, iirI, iirQ filter.LowPass
	eqY, eqI, eqQ    filter.Equalizer
}

type yiq struct {
	y, i, q int
}

// kilohertz to line sample conversion
func khz2l(khz int) int {
	return HRes * (khz * 100) / lineFreq
}

// New creates a CRT bound to the output buffer out, which must hold w*h
// pixels packed 0xRRGGBB. calibration is set to the defaults
func New(w, h int, out []int32) (*CRT, error) {
	c := &CRT{
		rn: noiseSeed,
	}
	if err := c.Resize(w, h, out); err != nil {
		return nil, err
	}
	c.Reset()

	// band gains are pre-scaled 16-bit fixed point fractions
	c.eqY = filter.NewEqualizer(khz2l(1500), khz2l(3000), HRes, 65536, 8192, 9175)
	c.eqI = filter.NewEqualizer(khz2l(80), khz2l(1150), HRes, 65536, 65536, 1311)
	c.eqQ = filter.NewEqualizer(khz2l(80), khz2l(1000), HRes, 65536, 65536, 0)

	c.iirY = filter.NewLowPass(lineFreq, yFreq)
	c.iirI = filter.NewLowPass(lineFreq, iFreq)
	c.iirQ = filter.NewLowPass(lineFreq, qFreq)

	return c, nil
}

// Resize rebinds the output buffer and its dimensions. the contents of out
// are not cleared, successive Decode calls blend into whatever is there
func (c *CRT) Resize(w, h int, out []int32) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("crt: output dimensions must be positive (%dx%d)", w, h)
	}
	if len(out) < w*h {
		return fmt.Errorf("crt: output buffer too small for %dx%d image", w, h)
	}
	c.outw = w
	c.outh = h
	c.out = out
	return nil
}

// Reset restores the default calibration and zeroes the sync tracking state
func (c *CRT) Reset() {
	c.Saturation = 18
	c.Brightness = 0
	c.Contrast = 179
	c.BlackPoint = 0
	c.WhitePoint = 100
	c.hsync = 0
	c.vsync = 0
}

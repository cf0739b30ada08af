package crt

// search windows for the sync trackers, in samples
const (
	hsyncWindow = 8
	vsyncWindow = 8
)

// seed for the noise generator
const noiseSeed = 194

// Decode recovers an RGB image from the analog buffer, blending it with the
// previous contents of the output buffer. noise is the intensity of the
// perturbation applied to a working copy of the signal before demodulation.
// the analog buffer itself is left untouched
func (c *CRT) Decode(noise int) {
	bright := c.Brightness - (blackLevel + c.BlackPoint)

	// colour carrier reference, bucketed by sample position mod 4. the
	// buckets accumulate over the whole frame so the chroma lock improves
	// with every line
	var ccref [4]int

	// signal plus noise
	for i := 0; i < InputSize; i++ {
		c.rn = c.rn*214019 + 140327895

		s := int(c.analog[i]) + ((int(c.rn>>16&0xff) - 0x7f) * noise >> 8)
		if s > 127 {
			s = 127
		}
		if s < -127 {
			s = -127
		}
		c.inp[i] = int8(s)
	}

	// look for vertical sync. the signal is integrated left to right and
	// the line accepted once the running sum falls below a threshold. the
	// threshold is high because the vsync pulse is much longer than the
	// hsync pulse, and integration lessens the effect of noise. if nothing
	// crosses the threshold the last scanned line is kept as a best effort
	var vline, j int
vsyncSearch:
	for i := -vsyncWindow; i < vsyncWindow; i++ {
		vline = posmod(c.vsync+i, VRes)
		sig := c.inp[vline*HRes:]
		s := 0
		for j = 0; j < HRes; j++ {
			s += int(sig[j])
			if s <= 100*syncLevel {
				break vsyncSearch
			}
		}
	}
	c.vsync = vline

	// if the vsync signal was in the second half of the line then this is
	// the odd field
	field := 0
	if j > HRes/2 {
		field = 1
	}

	// approximate maximum energy in a scanline, and the filtered energy of
	// the previous line. both feed the bloom emulation
	maxE := (128 + noise/2) * AVLen
	prevE := 16384 / 8

	// ratio of output height to the number of active video lines
	ratio := (c.outh << 16) / Lines
	ratio = (ratio + 32768) >> 16

	field *= ratio / 2

	for line := Top; line < Bot; line++ {
		beg := (line-Top)*c.outh/Lines + field
		end := (line-Top+1)*c.outh/Lines + field

		if beg >= c.outh {
			continue
		}
		if end > c.outh {
			end = c.outh
		}

		// look for horizontal sync. same idea as the vertical search but
		// with a much smaller window and threshold. the offset persists
		// into the next line's search
		ln := posmod(line+c.vsync, VRes) * HRes
		sig := c.inp[ln+c.hsync:]
		s := 0
		var i int
		for i = -hsyncWindow; i < hsyncWindow; i++ {
			s += int(sig[SyncBeg+i])
			if s <= 4*syncLevel {
				break
			}
		}
		c.hsync = posmod(i+c.hsync, HRes)

		// colour burst recovery. each phase bucket is an exponential
		// moving average of the burst samples, noise resistant and
		// improving over successive lines
		sig = c.inp[ln+(c.hsync&^3):]
		for i := CBBeg; i < CBBeg+(cbCycles*CBFreq); i++ {
			p := ccref[i&3] * 127 / 128 // fraction of the previous
			n := int(sig[i])            // mixed with the new sample
			ccref[i&3] = p + n
		}

		xpos := posmod(AVBeg+c.hsync, HRes)
		ypos := posmod(line+c.vsync, VRes)
		pos := xpos + ypos*HRes
		phasealign := pos & 3

		// amplitude of the carrier = saturation, phase difference = hue
		dci := ccref[(phasealign+1)&3] - ccref[(phasealign+3)&3]
		dcq := ccref[(phasealign+2)&3] - ccref[(phasealign+0)&3]

		wave := [4]int{
			-dcq * c.Saturation,
			dci * c.Saturation,
			dcq * c.Saturation,
			-dci * c.Saturation,
		}

		sig = c.inp[pos:]
		s = 0
		for i := 0; i < AVLen; i++ {
			s += int(sig[i]) // sum up the scan line
		}

		// bloom emulation. a brighter line deflects the beam further and
		// appears wider than a dim one, so the effective width of this
		// line follows the deviation of its energy from the expected
		// maximum
		prevE = prevE*123/128 + (((maxE>>1)-s)<<10)/maxE
		lineW := AVLen*112/128 + (prevE >> 9)

		dx := (lineW << 12) / c.outw
		scanL := (AVLen/2 - (lineW >> 1) + 8) << 12
		scanR := (AVLen - 1) << 12

		L := scanL >> 12
		R := scanR >> 12

		c.eqY.Reset()
		c.eqI.Reset()
		c.eqQ.Reset()

		// synchronous detection. luma is equalized directly while chroma
		// is multiplied by the recovered carrier reference, with a one
		// sample offset between I and Q to preserve the quadrature
		// separation
		for i := L; i < R; i++ {
			c.scan[i].y = c.eqY.Process(int(sig[i])+bright) << 4
			c.scan[i].i = c.eqI.Process(int(sig[i])*wave[(i+0)&3]>>9) >> 3
			c.scan[i].q = c.eqQ.Process(int(sig[i])*wave[(i+3)&3]>>9) >> 3
		}

		row := c.out[beg*c.outw : (beg+1)*c.outw]
		x := 0

		for pos := scanL; pos < scanR && x < c.outw; pos += dx {
			R := pos & 0xfff
			L := 0xfff - R
			sA := c.scan[pos>>12]
			sB := c.scan[(pos>>12)+1]

			// interpolate between samples if needed
			y := (sA.y*L)>>2 + (sB.y*R)>>2
			i := (sA.i*L)>>14 + (sB.i*R)>>14
			q := (sA.q*L)>>14 + (sB.q*R)>>14

			// YIQ to RGB
			r := (((y + 3879*i + 2556*q) >> 12) * c.Contrast) >> 8
			g := (((y - 1126*i - 2605*q) >> 12) * c.Contrast) >> 8
			b := (((y - 4530*i + 7021*q) >> 12) * c.Contrast) >> 8

			if r < 0 {
				r = 0
			}
			if g < 0 {
				g = 0
			}
			if b < 0 {
				b = 0
			}
			if r > 255 {
				r = 255
			}
			if g > 255 {
				g = 255
			}
			if b > 255 {
				b = 255
			}

			aa := int32(r<<16 | g<<8 | b)
			bb := row[x]

			// blend with the colour already at this position
			row[x] = (aa&0xfefeff)>>1 + (bb&0xfefeff)>>1
			x++
		}

		// duplicate extra lines
		for n := beg + 1; n < end; n++ {
			copy(c.out[n*c.outw:(n+1)*c.outw], c.out[(n-1)*c.outw:n*c.outw])
		}
	}
}

package crt

// Settings describe the source image for a single Encode call
type Settings struct {
	// source pixels, row-major, packed 0xRRGGBB. must hold W*H entries
	RGB []int32
	W   int
	H   int

	// which field of the interlaced frame is being encoded. only the low
	// bit is significant
	Field int

	// if false the colour burst is omitted and the signal carries luma only
	Color bool
}

// colour carrier phase
var cc = [4]int{0, 1, 0, -1}

// Encode synthesises a full frame of composite signal from the source image
// described by s, overwriting the previous contents of the analog buffer
func (c *CRT) Encode(s Settings) {
	destw := (AVLen * 55500) >> 16
	desth := (Lines * 63500) >> 16

	xo := AVBeg + 4 + (AVLen-destw)/2
	yo := Top + 4 + (Lines-desth)/2

	field := s.Field & 1

	// aligning the signal to a 4 sample boundary keeps the subcarrier
	// phase consistent
	xo &^= 3

	for n := 0; n < VRes; n++ {
		line := c.analog[n*HRes : (n+1)*HRes]
		t := 0

		switch {
		case n <= 3 || (n >= 7 && n <= 9):
			// equalizing pulses - small blips of sync, mostly blank
			for ; t < 4*HRes/100; t++ {
				line[t] = syncLevel
			}
			for ; t < 50*HRes/100; t++ {
				line[t] = blankLevel
			}
			for ; t < 54*HRes/100; t++ {
				line[t] = syncLevel
			}
			for ; t < HRes; t++ {
				line[t] = blankLevel
			}
		case n >= 4 && n <= 6:
			// vertical sync pulse - small blips of blank, mostly sync. the
			// serration breakpoints differ between the two fields so that
			// the fields interleave correctly
			offs := [4]int{46, 50, 96, 100}
			if field == 1 {
				offs = [4]int{4, 50, 96, 100}
			}
			for ; t < offs[0]*HRes/100; t++ {
				line[t] = syncLevel
			}
			for ; t < offs[1]*HRes/100; t++ {
				line[t] = blankLevel
			}
			for ; t < offs[2]*HRes/100; t++ {
				line[t] = syncLevel
			}
			for ; t < offs[3]*HRes/100; t++ {
				line[t] = blankLevel
			}
		default:
			// ordinary video line
			for ; t < SyncBeg; t++ {
				line[t] = blankLevel // front porch
			}
			for ; t < bwBeg; t++ {
				line[t] = syncLevel // sync tip
			}
			for ; t < AVBeg; t++ {
				line[t] = blankLevel // breezeway, burst, back porch
			}
			if n < Top {
				for ; t < HRes; t++ {
					line[t] = blankLevel
				}
			}
			if s.Color {
				// cbCycles of colour burst at 3.579545MHz. this is the
				// phase reference the decoder recovers
				for t = CBBeg; t < CBBeg+(cbCycles*CBFreq); t++ {
					line[t] = int8(blankLevel + cc[t&3]*burstLevel)
				}
			}
		}
	}

	for y := 0; y < desth; y++ {
		fieldOffset := (field*s.H + desth) / desth / 2

		// one or two adjacent source rows, blended evenly. the field offset
		// weaves the two fields of the interlaced frame
		syA := (y*s.H)/desth + fieldOffset
		syB := (y*s.H+desth/2)/desth + fieldOffset

		if syA >= s.H {
			syA = s.H - 1
		}
		if syB >= s.H {
			syB = s.H - 1
		}

		syA *= s.W
		syB *= s.W

		c.iirY.Reset()
		c.iirI.Reset()
		c.iirQ.Reset()

		for x := 0; x < destw; x++ {
			sx := (x * s.W) / destw
			pA := s.RGB[sx+syA]
			pB := s.RGB[sx+syB]
			rA := int(pA>>16) & 0xff
			gA := int(pA>>8) & 0xff
			bA := int(pA) & 0xff
			rB := int(pB>>16) & 0xff
			gB := int(pB>>8) & 0xff
			bB := int(pB) & 0xff

			// RGB to YIQ, blending the pixel with the one below
			fy := (19595*rA + 38470*gA + 7471*bA +
				19595*rB + 38470*gB + 7471*bB) >> 15
			fi := (39059*rA - 18022*gA - 21103*bA +
				39059*rB - 18022*gB - 21103*bB) >> 15
			fq := (13894*rA - 34275*gA + 20382*bA +
				13894*rB - 34275*gB + 20382*bB) >> 15

			ph := ccPhase(y + yo)
			ire := blackLevel + c.BlackPoint

			// bandlimit Y,I,Q and modulate the chroma onto the subcarrier
			fy = c.iirY.Process(fy)
			fi = c.iirI.Process(fi) * ph * cc[(x+0)&3]
			fq = c.iirQ.Process(fq) * ph * cc[(x+3)&3]

			ire += ((fy + fi + fq) * (whiteLevel * c.WhitePoint / 100)) >> 10
			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}

			c.analog[(x+xo)+(y+yo)*HRes] = int8(ire)
		}
	}
}

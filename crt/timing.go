package crt

// the fixed dimensions of the synthesised signal. every frame is VRes
// scanlines of HRes samples and any change here would need new equalizer
// gains and bloom calibration
const (
	HRes      = 910 // samples per scanline
	VRes      = 262 // scanlines per frame
	InputSize = HRes * VRes

	Top   = 21  // first scanline carrying active video
	Bot   = 261 // one past the last scanline carrying active video
	Lines = Bot - Top

	// samples per cycle of the colour subcarrier
	CBFreq = 4

	// cycles of colour burst written during blanking. real equipment puts
	// out somewhere between 7 and 12
	cbCycles = 10
)

// every scanline is the same fixed sequence of pulses:
//
//	FP (~1500ns)  SYNC (~4700ns)  BW (~600ns)  CB (~2500ns)  BP (~1600ns)  AV (~52600ns)
//	   BLANK           SYNC          BLANK        BURST          BLANK       VIDEO
//
// the nanosecond budget of the ~63500ns line is converted to sample offsets
// against HRes
const (
	fpNS   = 1500  // front porch
	syncNS = 4700  // sync tip
	bwNS   = 600   // breezeway
	cbNS   = 2500  // colour burst
	bpNS   = 1600  // back porch
	avNS   = 52600 // active video

	hbNS   = fpNS + syncNS + bwNS + cbNS + bpNS // horizontal blanking
	lineNS = hbNS + avNS
)

// starting points for the different pulses, in samples
const (
	SyncBeg = fpNS * HRes / lineNS
	bwBeg   = (fpNS + syncNS) * HRes / lineNS
	CBBeg   = (fpNS + syncNS + bwNS) * HRes / lineNS
	AVBeg   = hbNS * HRes / lineNS
	AVLen   = avNS * HRes / lineNS
)

// frequencies for bandlimiting, in Hz
const (
	lineFreq = 1431818 // full line, 14.31818MHz
	yFreq    = 420000  // luma (Y), 4.2MHz
	iFreq    = 150000  // chroma (I), 1.5MHz
	qFreq    = 55000   // chroma (Q), 0.55MHz
)

// signal levels in IRE units (100 = 1.0V)
const (
	whiteLevel = 100
	burstLevel = 20
	blackLevel = 7
	blankLevel = 0
	syncLevel  = -40
)

// 227.5 subcarrier cycles per line means every other line has reversed
// subcarrier phase
func ccPhase(line int) int {
	if line&1 == 1 {
		return -1
	}
	return 1
}

// ensure negative values for x are properly wrapped into [0,n)
func posmod(x, n int) int {
	return ((x % n) + n) % n
}

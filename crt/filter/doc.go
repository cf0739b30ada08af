// Package filter implements the two filter kinds used by the NTSC encode
// and decode pipelines: a single pole low pass filter for bandlimiting the
// YIQ channels before modulation; and a three band equalizer that separates
// and re-gains the spectral bands during demodulation.
//
// Coefficients and gains are fixed when a filter is created. Reset clears
// only the runtime history and must be called at the start of every encoded
// row (LowPass) or demodulated scanline (Equalizer). Stale history must
// never leak from one line to the next.
package filter

// Package demo runs the interactive CRT loop: every tick the output buffer
// is faded like a decaying phosphor, a fresh frame of composite signal is
// encoded from the source image and decoded back over the top of the fade.
// Calibration is adjusted live through actions received from the gui.
package demo

import (
	"image"

	"github.com/jetsetilly/crtemu/crt"
	"github.com/jetsetilly/crtemu/gui"
	"github.com/jetsetilly/crtemu/logger"
	"github.com/jetsetilly/crtemu/monitor"
)

// Options for the demo loop. the zero value is usable but dull
type Options struct {
	OutW, OutH  int
	Noise       int
	Color       bool
	Field       int
	Progressive bool
}

// Launch the demo loop with the source image src of dimensions w by h. the
// function blocks until the endDemo channel is signalled
func Launch(endDemo chan bool, rendering chan *image.RGBA, inp chan gui.Action,
	src []int32, w int, h int, opts Options) error {

	out := make([]int32, opts.OutW*opts.OutH)
	c, err := crt.New(opts.OutW, opts.OutH, out)
	if err != nil {
		return err
	}

	mon := monitor.New()
	lim := newLimiter(60)

	settings := crt.Settings{
		RGB:   src,
		W:     w,
		H:     h,
		Color: opts.Color,
		Field: opts.Field,
	}
	noise := opts.Noise
	progressive := opts.Progressive

	logger.Logf(logger.Allow, "demo", "displaying at %dx%d", opts.OutW, opts.OutH)

	for {
		select {
		case <-endDemo:
			return nil
		case a := <-inp:
			switch a {
			case gui.BlackPointUp:
				c.BlackPoint++
				mon.Report("black point", c.BlackPoint)
			case gui.BlackPointDown:
				c.BlackPoint--
				mon.Report("black point", c.BlackPoint)
			case gui.WhitePointUp:
				c.WhitePoint++
				mon.Report("white point", c.WhitePoint)
			case gui.WhitePointDown:
				c.WhitePoint--
				mon.Report("white point", c.WhitePoint)
			case gui.BrightnessUp:
				c.Brightness++
				mon.Report("brightness", c.Brightness)
			case gui.BrightnessDown:
				c.Brightness--
				mon.Report("brightness", c.Brightness)
			case gui.ContrastUp:
				c.Contrast++
				mon.Report("contrast", c.Contrast)
			case gui.ContrastDown:
				c.Contrast--
				mon.Report("contrast", c.Contrast)
			case gui.SaturationUp:
				c.Saturation++
				mon.Report("saturation", c.Saturation)
			case gui.SaturationDown:
				c.Saturation--
				mon.Report("saturation", c.Saturation)
			case gui.NoiseUp:
				noise++
				mon.Report("noise", noise)
			case gui.NoiseDown:
				noise--
				if noise < 0 {
					noise = 0
				}
				mon.Report("noise", noise)
			case gui.ToggleColor:
				settings.Color = !settings.Color
				mon.Toggle("color", settings.Color)
			case gui.ToggleField:
				settings.Field ^= 1
				mon.Report("field", settings.Field&1)
			case gui.ToggleProgressive:
				progressive = !progressive
				mon.Toggle("progressive", progressive)
			case gui.Reset:
				c.Reset()
				mon.Note("calibration reset")
			}
		default:
		}

		if !progressive {
			settings.Field ^= 1
		}

		fadePhosphors(out)
		c.Encode(settings)
		c.Decode(noise)

		select {
		case rendering <- toRGBA(out, opts.OutW, opts.OutH):
		default:
		}

		lim.Wait()
	}
}

// fade the phosphors before the next frame is decoded over them
func fadePhosphors(out []int32) {
	for i, p := range out {
		c := p & 0xffffff
		out[i] = c>>1&0x7f7f7f + c>>2&0x3f3f3f + c>>3&0x1f1f1f + c>>4&0x0f0f0f
	}
}

// a fresh image is allocated for every frame so that the gui never reads a
// buffer the demo loop is writing to
func toRGBA(out []int32, w int, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range out {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = 255
	}
	return img
}

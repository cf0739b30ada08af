package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/jetsetilly/crtemu/crt"
	"github.com/jetsetilly/crtemu/demo"
	"github.com/jetsetilly/crtemu/gui"
	"github.com/jetsetilly/crtemu/logger"
	"github.com/jetsetilly/crtemu/version"
)

func usage() {
	fmt.Printf("%s\n", version.Title())
	fmt.Println("usage: crtemu [flags] infile [outfile]")
	fmt.Println("sample usage: crtemu -noise 24 in.ppm out.ppm")
	fmt.Println("sample usage: crtemu -i in.ppm")
	flag.PrintDefaults()
}

func main() {
	var (
		outw        = flag.Int("width", 832, "output width")
		outh        = flag.Int("height", 624, "output height")
		noise       = flag.Int("noise", 24, "noise level")
		mono        = flag.Bool("m", false, "monochrome")
		field       = flag.Bool("f", false, "odd field (only meaningful in progressive mode)")
		progressive = flag.Bool("p", false, "progressive scan (rather than interlaced)")
		overwrite   = flag.Bool("y", false, "do not prompt when overwriting files")
		interactive = flag.Bool("i", false, "interactive demo window (no outfile)")
	)
	flag.Usage = usage
	flag.Parse()

	if err := run(*outw, *outh, *noise, *mono, *field, *progressive, *overwrite, *interactive, flag.Args()); err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(1)
	}
}

func run(outw, outh, noise int, mono, field, progressive, overwrite, interactive bool, args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("no input file")
	}

	if noise < 0 {
		noise = 0
	}

	src, w, h, err := loadImage(args[0])
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "main", "loaded %dx%d", w, h)

	opts := demo.Options{
		OutW:        outw,
		OutH:        outh,
		Noise:       noise,
		Color:       !mono,
		Progressive: progressive,
	}
	if field {
		opts.Field = 1
	}

	if interactive {
		return launch(src, w, h, opts)
	}

	if len(args) < 2 {
		usage()
		return fmt.Errorf("no output file")
	}
	if !overwrite && !promptOverwrite(args[1]) {
		return fmt.Errorf("not overwriting %s", args[1])
	}

	return convert(src, w, h, opts, args[1])
}

// convert the source image once and write the result. four frames are
// accumulated so that the temporal blend and the interlace weave settle
func convert(src []int32, w int, h int, opts demo.Options, outfile string) error {
	out := make([]int32, opts.OutW*opts.OutH)
	c, err := crt.New(opts.OutW, opts.OutH, out)
	if err != nil {
		return err
	}

	s := crt.Settings{
		RGB:   src,
		W:     w,
		H:     h,
		Color: opts.Color,
		Field: opts.Field,
	}

	logger.Logf(logger.Allow, "main", "converting to %dx%d", opts.OutW, opts.OutH)

	for range 4 {
		c.Encode(s)
		c.Decode(opts.Noise)
		if !opts.Progressive {
			s.Field ^= 1
			c.Encode(s)
			c.Decode(opts.Noise)
		}
	}

	return saveImage(outfile, out, opts.OutW, opts.OutH)
}

// launch the demo window and the demo loop, either of which can end the
// other. the channels are buffered so the order in which they end does not
// matter
func launch(src []int32, w int, h int, opts demo.Options) error {
	endGui := make(chan bool, 1)
	endDemo := make(chan bool, 1)
	resultGui := make(chan error, 1)
	resultDemo := make(chan error, 1)

	rendering := make(chan *image.RGBA, 1)
	inp := make(chan gui.Action, 1)

	go func() {
		resultGui <- gui.Launch(endGui, rendering, inp)
		endDemo <- true
	}()

	go func() {
		resultDemo <- demo.Launch(endDemo, rendering, inp, src, w, h, opts)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		return err
	}
	return <-resultDemo
}

func promptOverwrite(fn string) bool {
	if _, err := os.Stat(fn); err != nil {
		return true
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("--- file (%s) already exists, overwrite? (y/n)\n", fn)
		if !sc.Scan() {
			return false
		}
		switch sc.Text() {
		case "y", "Y":
			return true
		case "n", "N":
			return false
		}
	}
}

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/jetsetilly/crtemu/ppm"
)

// loadImage reads an image file as packed 0xRRGGBB pixels. PPM (P6) is
// handled by the ppm package, anything else goes through image.Decode
func loadImage(fn string) ([]int32, int, int, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(fn), ".ppm") {
		return ppm.Read(f)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("unable to read image: %w", err)
	}

	dim := img.Bounds()
	w := dim.Dx()
	h := dim.Dy()
	px := make([]int32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(dim.Min.X+x, dim.Min.Y+y)).(color.RGBA)
			px[y*w+x] = int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
		}
	}
	return px, w, h, nil
}

// saveImage writes packed 0xRRGGBB pixels to a PPM or PNG file, chosen by
// the file extension
func saveImage(fn string, px []int32, w int, h int) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(fn), ".ppm") {
		return ppm.Write(f, px, w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range px[:w*h] {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = 255
	}
	return png.Encode(f, img)
}

// Package ppm reads and writes binary NetPBM images (type P6). Pixels are
// exchanged as packed 0xRRGGBB values, the format used throughout the rest
// of the project.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// header tokens are separated by whitespace. comments run from a '#' to the
// end of the line
func nextToken(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case b == '#':
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(b)
		}
	}
}

func nextInt(br *bufio.Reader) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: bad header field: %w", err)
	}
	return n, nil
}

// Read decodes a P6 image from r
func Read(r io.Reader) ([]int32, int, int, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("ppm: %w", err)
	}
	if magic != "P6" {
		return nil, 0, 0, fmt.Errorf("ppm: not a P6 image (magic %q)", magic)
	}

	w, err := nextInt(br)
	if err != nil {
		return nil, 0, 0, err
	}
	h, err := nextInt(br)
	if err != nil {
		return nil, 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("ppm: bad image dimensions (%dx%d)", w, h)
	}

	maxval, err := nextInt(br)
	if err != nil {
		return nil, 0, 0, err
	}
	if maxval != 255 {
		return nil, 0, 0, fmt.Errorf("ppm: unsupported maxval %d", maxval)
	}

	data := make([]byte, w*h*3)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, 0, 0, fmt.Errorf("ppm: short pixel data: %w", err)
	}

	px := make([]int32, w*h)
	for i := range px {
		px[i] = int32(data[i*3])<<16 | int32(data[i*3+1])<<8 | int32(data[i*3+2])
	}
	return px, w, h, nil
}

// Write encodes px as a P6 image
func Write(w io.Writer, px []int32, width int, height int) error {
	if width <= 0 || height <= 0 || len(px) < width*height {
		return fmt.Errorf("ppm: bad image dimensions (%dx%d)", width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height)
	for _, p := range px[:width*height] {
		bw.WriteByte(byte(p >> 16))
		bw.WriteByte(byte(p >> 8))
		bw.WriteByte(byte(p))
	}
	return bw.Flush()
}

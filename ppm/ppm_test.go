package ppm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/crtemu/ppm"
	"github.com/jetsetilly/crtemu/test"
)

func TestRoundTrip(t *testing.T) {
	px := []int32{
		0x000000, 0xffffff, 0xff0000, 0x00ff00,
		0x0000ff, 0x123456, 0xabcdef, 0x808080,
	}

	var buf bytes.Buffer
	err := ppm.Write(&buf, px, 4, 2)
	test.ExpectEquality(t, err, nil)

	got, w, h, err := ppm.Read(&buf)
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, w, 4)
	test.ExpectEquality(t, h, 2)
	for i := range px {
		test.ExpectEquality(t, got[i], px[i])
	}
}

func TestReadComments(t *testing.T) {
	// comments can appear between any of the header fields
	data := "P6 # a comment\n# another comment\n2 1\n255\n" + "\xff\x00\x00\x00\xff\x00"

	px, w, h, err := ppm.Read(strings.NewReader(data))
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, h, 1)
	test.ExpectEquality(t, px[0], int32(0xff0000))
	test.ExpectEquality(t, px[1], int32(0x00ff00))
}

func TestReadMalformed(t *testing.T) {
	// not a P6 image
	_, _, _, err := ppm.Read(strings.NewReader("P5 2 2 255 xxxx"))
	test.ExpectSuccess(t, err != nil)

	// bad dimensions
	_, _, _, err = ppm.Read(strings.NewReader("P6 0 2 255 "))
	test.ExpectSuccess(t, err != nil)

	// unsupported maxval
	_, _, _, err = ppm.Read(strings.NewReader("P6 2 2 65535 "))
	test.ExpectSuccess(t, err != nil)

	// truncated pixel data
	_, _, _, err = ppm.Read(strings.NewReader("P6 2 2 255 \xff\x00"))
	test.ExpectSuccess(t, err != nil)

	// header that is not a number
	_, _, _, err = ppm.Read(strings.NewReader("P6 two 2 255 "))
	test.ExpectSuccess(t, err != nil)
}

func TestWriteBadDimensions(t *testing.T) {
	var buf bytes.Buffer
	test.ExpectSuccess(t, ppm.Write(&buf, nil, 0, 2) != nil)
	test.ExpectSuccess(t, ppm.Write(&buf, make([]int32, 2), 2, 2) != nil)
}

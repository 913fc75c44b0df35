package imageio

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func pattern() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 25), uint8(y * 30), 128, 255})
		}
	}
	return img
}

func TestRoundTripLossless(t *testing.T) {
	src := pattern()
	for _, f := range []Format{WebP, TGA, PNG} {
		var buf bytes.Buffer
		if err := Encode(&buf, src, f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		got, err := Decode(&buf, f)
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		if got.Bounds().Size() != src.Bounds().Size() {
			t.Fatalf("%s size %v", f, got.Bounds())
		}
		for y := 0; y < 7; y++ {
			for x := 0; x < 9; x++ {
				gb := got.Bounds().Min
				if a, b := got.NRGBAAt(gb.X+x, gb.Y+y), src.NRGBAAt(x, y); a != b {
					t.Fatalf("%s pixel (%d,%d)=%v want %v", f, x, y, a, b)
				}
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": WebP, "WEBP": WebP, ".tga": TGA, " png ": PNG}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q)=%v,%v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatal("gif accepted")
	}
	if err := Encode(&bytes.Buffer{}, pattern(), Format("bmp")); err == nil {
		t.Fatal("bmp encoded")
	}
}

func TestExtAndContentType(t *testing.T) {
	if WebP.Ext() != ".webp" || TGA.ContentType() != "image/x-tga" || PNG.ContentType() != "image/png" || WebP.ContentType() != "image/webp" {
		t.Fatal("format metadata")
	}
}

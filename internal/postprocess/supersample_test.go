package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDownsampleKeepsSolidColor(t *testing.T) {
	c := color.NRGBA{200, 100, 50, 255}
	out := Downsample(solid(64, 48, c), 32, 24)
	if b := out.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("size %v", b)
	}
	got := out.NRGBAAt(16, 12)
	if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 || got.A != 255 {
		t.Fatalf("center %v want %v", got, c)
	}
}

func TestDownsampleSmallerIsNoop(t *testing.T) {
	img := solid(10, 10, color.NRGBA{A: 255})
	if Downsample(img, 20, 20) != img {
		t.Fatal("expected same image back")
	}
}

func TestThumbnailAspect(t *testing.T) {
	out := Thumbnail(solid(200, 100, color.NRGBA{1, 2, 3, 255}), 50)
	if b := out.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Fatalf("thumbnail %v", b)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Package imageio encodes rendered scenes to the supported output formats and
// decodes them back.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image format.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// ParseFormat accepts a format name or file extension, case-insensitively.
// An empty string selects WebP.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "webp":
		return WebP, nil
	case "tga":
		return TGA, nil
	case "png":
		return PNG, nil
	}
	return "", fmt.Errorf("imageio: unknown format %q", s)
}

// Ext is the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case TGA:
		return "image/x-tga"
	case PNG:
		return "image/png"
	}
	return "image/webp"
}

// Encode writes img in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case PNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("imageio: unknown format %q", string(f))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// Decode reads an image in format f and returns it as NRGBA.
func Decode(r io.Reader, f Format) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case WebP:
		img, err = nativewebp.Decode(r)
	case TGA:
		img, err = tga.Decode(r)
	case PNG:
		img, err = png.Decode(r)
	default:
		return nil, fmt.Errorf("imageio: unknown format %q", string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", f, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to NRGBA, returning NRGBA input as is.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// no alpha channel
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
			}
		}
	}
	return dst
}

package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type label struct {
	text  string
	x, y  float64 // render-space anchor, before downsampling
	color color.NRGBA
}

// drawLabels writes each label centered on its anchor, scaled from render
// space to the final image by 1/supersample.
func drawLabels(img *image.NRGBA, labels []label, supersample int) {
	face := basicfont.Face7x13
	for _, l := range labels {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(l.color),
			Face: face,
		}
		w := d.MeasureString(l.text).Ceil()
		x := int(l.x/float64(supersample)) - w/2
		y := int(l.y/float64(supersample)) + face.Ascent/2
		d.Dot = fixed.P(x, y)
		d.DrawString(l.text)
	}
}

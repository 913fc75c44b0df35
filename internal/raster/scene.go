// Package raster draws vectors as arrows from the origin in a small 3D scene
// with a ground grid and coloured axes, and returns it as an image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"vector3d-calc/internal/postprocess"
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

// Arrow is one vector drawn from the origin.
type Arrow struct {
	Name  string
	Color color.NRGBA
	Vec   vecmath.Vec3
}

// ArrowsFromNamed converts display vectors; unparsable colours fall back to
// DefaultArrow.
func ArrowsFromNamed(list []vecinput.Named) []Arrow {
	out := make([]Arrow, len(list))
	for i, n := range list {
		c, err := ParseHex(n.Color)
		if err != nil {
			c = DefaultArrow
		}
		out[i] = Arrow{Name: n.Name, Color: c, Vec: n.Vec}
	}
	return out
}

// Options control the camera and output size. Zero fields take the values of
// DefaultOptions.
type Options struct {
	Width       int
	Height      int
	Supersample int
	Azimuth     float64 // degrees around +Y
	Elevation   float64 // degrees above the ground plane
	Perspective bool
	FOV         float64 // degrees, perspective only
	NoGrid      bool
	NoLabels    bool

	// ExplicitView keeps Azimuth and Elevation even when both are zero;
	// otherwise 0/0 means "use the default view".
	ExplicitView bool
}

// DefaultOptions views the scene from the (8, 8, 8) direction.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Supersample: 2,
		Azimuth:     45,
		Elevation:   math.Atan2(1, math.Sqrt2) * 180 / math.Pi,
		FOV:         50,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Supersample <= 0 {
		o.Supersample = d.Supersample
	}
	if !o.ExplicitView && o.Azimuth == 0 && o.Elevation == 0 {
		o.Azimuth, o.Elevation = d.Azimuth, d.Elevation
	}
	if o.FOV <= 0 || o.FOV >= 180 {
		o.FOV = d.FOV
	}
	return o
}

// Layout holds the world-space sizes derived from the arrows.
type Layout struct {
	GridHalf float64 // grid spans [-GridHalf, GridHalf] on X and Z
	Cell     float64 // grid cell size; a section line every 5 cells
	AxisLen  float64
}

// LayoutFor starts from a 20×20 unit grid with axes of length 5 and grows
// both, in 1-2-5 steps, until every arrow tip fits.
func LayoutFor(arrows []Arrow) Layout {
	extent := 0.0
	for _, a := range arrows {
		for _, c := range a.Vec {
			extent = math.Max(extent, math.Abs(c))
		}
	}
	l := Layout{GridHalf: 10, Cell: 1, AxisLen: 5}
	if extent <= l.GridHalf {
		return l
	}
	l.Cell = niceStep(extent / 10)
	l.GridHalf = 10 * l.Cell
	l.AxisLen = l.GridHalf / 2
	return l
}

// niceStep rounds x up to 1, 2 or 5 times a power of ten.
func niceStep(x float64) float64 {
	p := math.Pow(10, math.Floor(math.Log10(x)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*p >= x {
			return m * p
		}
	}
	return 10 * p
}

// RenderScene renders the arrows at opts.Width×opts.Height.
func RenderScene(arrows []Arrow, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	ss := opts.Supersample
	w, h := opts.Width*ss, opts.Height*ss
	layout := LayoutFor(arrows)

	g := layout.GridHalf
	points := []vecmath.Vec3{
		{-g, 0, -g}, {g, 0, -g}, {-g, 0, g}, {g, 0, g},
		{0, layout.AxisLen * 1.1, 0},
	}
	for _, a := range arrows {
		points = append(points, a.Vec)
	}
	cam := FitCamera(points, opts.Azimuth, opts.Elevation, opts.Perspective, opts.FOV, w, h, 16*ss)

	fb := NewFrameBuffer(w, h, Background)
	lc := DefaultLightConfig()
	line := 0.5 * float64(ss)

	if !opts.NoGrid {
		drawGrid(fb, cam, layout, line)
	}

	var labels []label
	axes := []struct {
		name string
		dir  vecmath.Vec3
		c    color.NRGBA
	}{
		{"X", vecmath.Vec3{1, 0, 0}, AxisXColor},
		{"Y", vecmath.Vec3{0, 1, 0}, AxisYColor},
		{"Z", vecmath.Vec3{0, 0, 1}, AxisZColor},
	}
	for _, ax := range axes {
		tip := ax.dir.Scale(layout.AxisLen)
		head := 0.2 * layout.AxisLen
		drawArrow(fb, cam, &lc, vecmath.Vec3{}, tip, head, 0.1*head, line, ax.c)
		x, y, _ := cam.Project(ax.dir.Scale(layout.AxisLen * 1.1))
		labels = append(labels, label{ax.name, x, y, ax.c})
	}

	for _, a := range arrows {
		if a.Vec.IsZero() {
			continue
		}
		n := a.Vec.Len()
		drawArrow(fb, cam, &lc, vecmath.Vec3{}, a.Vec, 0.2*n, 0.05*n, 1.5*float64(ss), a.Color)
		if a.Name != "" {
			x, y, _ := cam.Project(a.Vec.Add(a.Vec.Normalize().Scale(0.05 * layout.GridHalf)))
			labels = append(labels, label{a.Name, x, y, a.Color})
		}
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}
	if !opts.NoLabels {
		drawLabels(img, labels, ss)
	}
	return img
}

func drawGrid(fb *FrameBuffer, cam *Camera, l Layout, px float64) {
	n := int(math.Round(l.GridHalf / l.Cell))
	// cells first so section lines win where they overlap
	for pass := 0; pass < 2; pass++ {
		for i := -n; i <= n; i++ {
			section := i%5 == 0
			if section != (pass == 1) {
				continue
			}
			c := GridCell
			if section {
				c = GridSection
			}
			t := float64(i) * l.Cell
			drawWorldLine(fb, cam, vecmath.Vec3{t, 0, -l.GridHalf}, vecmath.Vec3{t, 0, l.GridHalf}, px, c)
			drawWorldLine(fb, cam, vecmath.Vec3{-l.GridHalf, 0, t}, vecmath.Vec3{l.GridHalf, 0, t}, px, c)
		}
	}
}

func drawWorldLine(fb *FrameBuffer, cam *Camera, a, b vecmath.Vec3, px float64, c color.NRGBA) {
	x0, y0, z0 := cam.Project(a)
	x1, y1, z1 := cam.Project(b)
	DrawLine(fb, x0, y0, z0, x1, y1, z1, px, c)
}

// Describe is a one-line summary used in logs.
func (o Options) Describe() string {
	o = o.withDefaults()
	mode := "ortho"
	if o.Perspective {
		mode = fmt.Sprintf("persp %.0f°", o.FOV)
	}
	return fmt.Sprintf("%dx%d ss%d az%.0f el%.0f %s", o.Width, o.Height, o.Supersample, o.Azimuth, o.Elevation, mode)
}

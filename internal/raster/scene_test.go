package raster

import (
	"image"
	"image/color"
	"testing"

	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

var amber = color.NRGBA{0xf5, 0x9e, 0x0b, 255}

func near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol
}

func count(img *image.NRGBA, c color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if near(img.NRGBAAt(x, y), c, 8) {
				n++
			}
		}
	}
	return n
}

func TestRenderSceneSizeAndBackground(t *testing.T) {
	img := RenderScene(nil, Options{Width: 160, Height: 120})
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("size %v", b)
	}
	if got := img.NRGBAAt(0, 0); !near(got, Background, 2) {
		t.Fatalf("corner %v want %v", got, Background)
	}
}

func TestRenderSceneDrawsArrows(t *testing.T) {
	opts := Options{Width: 200, Height: 200}
	empty := RenderScene(nil, opts)
	if n := count(empty, amber); n != 0 {
		t.Fatalf("%d amber pixels without arrows", n)
	}
	withArrow := RenderScene([]Arrow{{Name: "v1", Color: amber, Vec: vecmath.V(3, 4, 5)}}, opts)
	if n := count(withArrow, amber); n == 0 {
		t.Fatal("arrow not drawn")
	}
}

func TestRenderSceneSkipsZeroVector(t *testing.T) {
	opts := Options{Width: 120, Height: 120, NoLabels: true}
	img := RenderScene([]Arrow{{Color: amber}}, opts)
	if n := count(img, amber); n != 0 {
		t.Fatalf("zero vector drew %d pixels", n)
	}
}

func TestRenderScenePerspective(t *testing.T) {
	opts := Options{Width: 128, Height: 96, Perspective: true, FOV: 60, NoLabels: true}
	img := RenderScene([]Arrow{{Color: amber, Vec: vecmath.V(30, -10, 20)}}, opts)
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Fatalf("size %v", b)
	}
	if count(img, amber) == 0 {
		t.Fatal("arrow not drawn in perspective")
	}
}

func TestCameraUpIsUp(t *testing.T) {
	d := DefaultOptions()
	pts := []vecmath.Vec3{{-10, 0, -10}, {10, 0, 10}, {0, 5, 0}}
	for _, persp := range []bool{false, true} {
		cam := FitCamera(pts, d.Azimuth, d.Elevation, persp, d.FOV, 100, 100, 4)
		ox, oy, _ := cam.Project(vecmath.Vec3{})
		ux, uy, _ := cam.Project(vecmath.V(0, 5, 0))
		if uy >= oy {
			t.Fatalf("persp=%v: +Y projects below origin (%v >= %v)", persp, uy, oy)
		}
		if diff := ux - ox; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("persp=%v: +Y not vertical, dx=%v", persp, diff)
		}
		for _, p := range pts {
			x, y, _ := cam.Project(p)
			if x < 0 || x > 100 || y < 0 || y > 100 {
				t.Fatalf("persp=%v: %v outside frame at (%v,%v)", persp, p, x, y)
			}
		}
	}
}

func TestCameraDepthOrdersTowardViewer(t *testing.T) {
	d := DefaultOptions()
	cam := FitCamera([]vecmath.Vec3{{-1, -1, -1}, {1, 1, 1}}, d.Azimuth, d.Elevation, false, d.FOV, 64, 64, 0)
	_, _, near := cam.Project(vecmath.V(1, 1, 1))
	_, _, far := cam.Project(vecmath.V(-1, -1, -1))
	if near <= far {
		t.Fatalf("depth near=%v far=%v", near, far)
	}
}

func TestLayoutFor(t *testing.T) {
	l := LayoutFor([]Arrow{{Vec: vecmath.V(3, 4, 5)}})
	if l.GridHalf != 10 || l.Cell != 1 || l.AxisLen != 5 {
		t.Fatalf("small layout %+v", l)
	}
	l = LayoutFor([]Arrow{{Vec: vecmath.V(-25, 4, 5)}})
	if l.GridHalf != 50 || l.Cell != 5 || l.AxisLen != 25 {
		t.Fatalf("large layout %+v", l)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#f59e0b")
	if err != nil || c != amber {
		t.Fatalf("ParseHex=%v,%v", c, err)
	}
	if c, err := ParseHex("fff"); err != nil || c != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("short form=%v,%v", c, err)
	}
	for _, bad := range []string{"", "#12", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) accepted", bad)
		}
	}
}

func TestArrowsFromNamed(t *testing.T) {
	list := []vecinput.Named{
		{Name: "a", Color: "#f59e0b", Vec: vecmath.V(1, 2, 3)},
		{Name: "b", Color: "not-a-color", Vec: vecmath.V(0, 1, 0)},
	}
	got := ArrowsFromNamed(list)
	if got[0].Color != amber || got[0].Vec != list[0].Vec || got[0].Name != "a" {
		t.Fatalf("arrow0 %+v", got[0])
	}
	if got[1].Color != DefaultArrow {
		t.Fatalf("fallback color %v", got[1].Color)
	}
}

func TestShade(t *testing.T) {
	lc := DefaultLightConfig()
	toward := lc.ComputeShade(lc.KeyDir)
	away := lc.ComputeShade(lc.FillDir)
	if toward <= away || away <= lc.Ambient {
		t.Fatalf("shade toward=%v away=%v", toward, away)
	}
	if got := Shade(color.NRGBA{100, 200, 50, 77}, 2); got != (color.NRGBA{200, 255, 100, 77}) {
		t.Fatalf("Shade=%v", got)
	}
}

func TestExplicitZeroView(t *testing.T) {
	if o := (Options{}).withDefaults(); o.Azimuth != 45 || o.Elevation == 0 {
		t.Fatalf("unset view not defaulted: %+v", o)
	}
	o := Options{ExplicitView: true}.withDefaults()
	if o.Azimuth != 0 || o.Elevation != 0 {
		t.Fatalf("explicit 0/0 replaced: %+v", o)
	}

	arrows := []Arrow{{Color: amber, Vec: vecmath.V(3, 4, 5)}}
	def := RenderScene(arrows, Options{Width: 96, Height: 96, NoLabels: true})
	front := RenderScene(arrows, Options{Width: 96, Height: 96, NoLabels: true, ExplicitView: true})
	if string(def.Pix) == string(front.Pix) {
		t.Fatal("0/0 view rendered the default view")
	}
}

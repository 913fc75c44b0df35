package export

import (
	"encoding/json"
	"fmt"
	"image/color"

	"vector3d-calc/internal/history"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

// ResultColor marks the vector a calculation produced.
var ResultColor = color.NRGBA{0xf8, 0xfa, 0xfc, 255}

// payload is the union of every stored input and result shape that carries
// vectors.
type payload struct {
	Vector  *vecmath.Vec3  `json:"vector"`
	A       *vecmath.Vec3  `json:"a"`
	B       *vecmath.Vec3  `json:"b"`
	Vectors []vecmath.Vec3 `json:"vectors"`
	Cables  []vecmath.Vec3 `json:"cables"`
	Field   *vecmath.Vec3  `json:"field"`
	Moves   []vecmath.Vec3 `json:"moves"`

	Resultant     *vecmath.Vec3 `json:"resultant"`
	Cross         *vecmath.Vec3 `json:"cross"`
	Direction     *vecmath.Vec3 `json:"direction"`
	FinalPosition *vecmath.Vec3 `json:"finalPosition"`
}

// Arrows extracts the vectors of a stored calculation: its inputs in palette
// colours, then the vector-valued result, if any, in ResultColor.
func Arrows(rec history.Record) ([]raster.Arrow, error) {
	var in, out payload
	if err := json.Unmarshal(rec.Input, &in); err != nil {
		return nil, fmt.Errorf("export: decode input of %s: %w", rec.ID, err)
	}
	if len(rec.Result) > 0 {
		if err := json.Unmarshal(rec.Result, &out); err != nil {
			return nil, fmt.Errorf("export: decode result of %s: %w", rec.ID, err)
		}
	}

	var arrows []raster.Arrow
	add := func(name string, v vecmath.Vec3) {
		c, _ := raster.ParseHex(vecinput.Palette[len(arrows)%len(vecinput.Palette)])
		arrows = append(arrows, raster.Arrow{Name: name, Color: c, Vec: v})
	}
	addList := func(prefix string, vs []vecmath.Vec3) {
		for i, v := range vs {
			add(fmt.Sprintf("%s%d", prefix, i+1), v)
		}
	}

	if in.Vector != nil {
		add("v", *in.Vector)
	}
	if in.A != nil {
		add("a", *in.A)
	}
	if in.B != nil {
		add("b", *in.B)
	}
	addList("v", in.Vectors)
	addList("T", in.Cables)
	addList("m", in.Moves)
	if in.Field != nil {
		add("E", *in.Field)
	}
	if len(arrows) == 0 {
		return nil, fmt.Errorf("export: record %s (%s) has no vectors", rec.ID, rec.Kind)
	}

	for _, r := range []struct {
		name string
		v    *vecmath.Vec3
	}{
		{"R", out.Resultant},
		{"M", out.Cross},
		{"u", out.Direction},
		{"P", out.FinalPosition},
		{"r", out.Vector},
	} {
		if r.v != nil {
			arrows = append(arrows, raster.Arrow{Name: r.name, Color: ResultColor, Vec: *r.v})
			break
		}
	}
	return arrows, nil
}

package vecinput

import (
	"fmt"

	"github.com/google/uuid"

	"vector3d-calc/internal/vecmath"
)

// Palette cycles through these display colours as vectors are added.
var Palette = []string{
	"#3b82f6", // blue
	"#06b6d4", // cyan
	"#10b981", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // purple
}

// Named is a vector tagged with presentation metadata. Name and Color never
// take part in arithmetic.
type Named struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Vec   vecmath.Vec3 `json:"vector"`
}

// Append adds v to list, naming it v<n> and giving it the next palette colour.
func Append(list []Named, v vecmath.Vec3) []Named {
	n := len(list)
	return append(list, Named{
		ID:    uuid.NewString(),
		Name:  fmt.Sprintf("v%d", n+1),
		Color: Palette[n%len(Palette)],
		Vec:   v,
	})
}

// FromVecs names a plain vector list.
func FromVecs(vs []vecmath.Vec3) []Named {
	out := make([]Named, 0, len(vs))
	for _, v := range vs {
		out = Append(out, v)
	}
	return out
}

// Remove drops the vector with the given id. Remaining vectors keep their
// names and colours.
func Remove(list []Named, id string) []Named {
	out := make([]Named, 0, len(list))
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Update sets one axis ("x", "y" or "z") of the vector with the given id from
// raw text.
func Update(list []Named, id, axis, text string) []Named {
	out := append([]Named(nil), list...)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch axis {
		case "x":
			out[i].Vec[0] = ParseComponent(text)
		case "y":
			out[i].Vec[1] = ParseComponent(text)
		case "z":
			out[i].Vec[2] = ParseComponent(text)
		}
	}
	return out
}

// Vecs strips the metadata.
func Vecs(list []Named) []vecmath.Vec3 {
	out := make([]vecmath.Vec3, len(list))
	for i, n := range list {
		out[i] = n.Vec
	}
	return out
}

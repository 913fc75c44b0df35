package vecinput

import (
	"strings"

	"vector3d-calc/internal/vecmath"
)

// List is a repeatable command-line flag of vectors, each parsed with
// ParseVec3.
type List []vecmath.Vec3

func (l *List) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func (l *List) Set(s string) error {
	*l = append(*l, ParseVec3(s))
	return nil
}

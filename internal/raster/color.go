package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Scene colors of the interactive viewer.
var (
	Background   = color.NRGBA{14, 19, 27, 255} // hsl(215, 30%, 8%)
	GridCell     = mustHex("#1e293b")
	GridSection  = mustHex("#334155")
	AxisXColor   = mustHex("#ef4444")
	AxisYColor   = mustHex("#10b981")
	AxisZColor   = mustHex("#3b82f6")
	DefaultArrow = mustHex("#3b82f6")
)

// ParseHex reads #rgb or #rrggbb.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("raster: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("raster: bad color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

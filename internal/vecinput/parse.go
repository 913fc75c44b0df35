// Package vecinput turns user-entered text into vectors. Malformed numbers
// become 0 here, before any value reaches vecmath.
package vecinput

import (
	"math"
	"strconv"
	"strings"

	"vector3d-calc/internal/vecmath"
)

// ParseComponent reads the longest leading decimal number in s, the way a
// browser's parseFloat does, and maps anything unusable (empty, NaN,
// infinities, overflow) to 0.
func ParseComponent(s string) float64 {
	s = strings.TrimLeft(s, " \t\r\n\f\v")
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// numericPrefix returns the length of the longest prefix of s matching
// [+-]?(digits[.digits]|.digits)([eE][+-]?digits)?.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseTriple coerces three component fields.
func ParseTriple(x, y, z string) vecmath.Vec3 {
	return vecmath.Vec3{ParseComponent(x), ParseComponent(y), ParseComponent(z)}
}

// ParseVec3 reads "x,y,z" (commas, semicolons or whitespace, optional
// parentheses). Missing components are 0 and extra ones are ignored.
func ParseVec3(s string) vecmath.Vec3 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	var parts [3]string
	copy(parts[:], fields)
	return ParseTriple(parts[0], parts[1], parts[2])
}

package main

import (
	"fmt"
	"strings"

	"vector3d-calc/internal/vecinput"
)

// multi is a repeatable string flag.
type multi []string

func (m *multi) String() string { return strings.Join(*m, " ") }

func (m *multi) Set(s string) error {
	*m = append(*m, s)
	return nil
}

// applyEdits updates components ("v1.x=5") and then drops vectors by name.
// Names are resolved before any drop, so v3 stays v3 after v2 is removed.
func applyEdits(list []vecinput.Named, sets, drops []string) ([]vecinput.Named, error) {
	idOf := func(name string) (string, error) {
		for _, n := range list {
			if n.Name == name {
				return n.ID, nil
			}
		}
		return "", fmt.Errorf("no vector named %q", name)
	}

	for _, s := range sets {
		target, text, ok := strings.Cut(s, "=")
		name, axis, ok2 := strings.Cut(target, ".")
		if !ok || !ok2 || (axis != "x" && axis != "y" && axis != "z") {
			return nil, fmt.Errorf("bad -set %q: want name.axis=value", s)
		}
		id, err := idOf(name)
		if err != nil {
			return nil, err
		}
		list = vecinput.Update(list, id, axis, text)
	}

	ids := make([]string, 0, len(drops))
	for _, name := range drops {
		id, err := idOf(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		list = vecinput.Remove(list, id)
	}
	return list, nil
}

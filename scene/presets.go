package scene

import (
	"sort"

	"github.com/calderov/miniray/types"
)

// A built-in scene selectable by name from the command line.
type Preset struct {
	Name        string
	Description string
	Build       func() *World
}

var presets = map[string]Preset{
	"sky": {
		Name:        "sky",
		Description: "empty scene showing only the background gradient",
		Build: func() *World {
			return NewWorld()
		},
	},
	"three-spheres": {
		Name:        "three-spheres",
		Description: "diffuse, metal and glass spheres resting on a diffuse ground",
		Build: func() *World {
			world := NewWorld(
				NewSphere(types.XYZ(0, -100.5, -1), 100, Lambertian{Albedo: types.XYZ(0.8, 0.8, 0.0)}),
				NewSphere(types.XYZ(0, 0, -1), 0.5, Lambertian{Albedo: types.XYZ(0.1, 0.2, 0.5)}),
				NewSphere(types.XYZ(-1, 0, -1), 0.5, Dielectric{RefIdx: 1.5}),
				NewSphere(types.XYZ(1, 0, -1), 0.5, Metal{Albedo: types.XYZ(0.8, 0.6, 0.2), Fuzz: 0.1}),
			)
			return world
		},
	},
	"eclipse": {
		Name:        "eclipse",
		Description: "a single fully absorbing sphere",
		Build: func() *World {
			return NewWorld(
				NewSphere(types.XYZ(0, 0, -1), 0.5, Absorber{}),
			)
		},
	},
}

// Look up a built-in scene by name.
func Lookup(name string) (Preset, bool) {
	p, exists := presets[name]
	return p, exists
}

// List the built-in scenes in name order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

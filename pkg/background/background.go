package background

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Background colors rays that hit no geometry. Only the ray direction is consulted.
type Background interface {
	Color(ray core.Ray) core.Color
}

// Flat returns the same color for every ray
type Flat struct {
	color core.Color
}

// NewFlat creates a single-color background
func NewFlat(color core.Color) *Flat {
	return &Flat{color: color}
}

func (f *Flat) Color(ray core.Ray) core.Color {
	return f.color
}

// Horizon splits the sky from the ground at direction.y = 0
type Horizon struct {
	sky    core.Color
	ground core.Color
}

// NewHorizon creates a two-tone background
func NewHorizon(sky, ground core.Color) *Horizon {
	return &Horizon{sky: sky, ground: ground}
}

func (h *Horizon) Color(ray core.Ray) core.Color {
	if ray.Direction.Y > 0 {
		return h.sky
	}
	return h.ground
}

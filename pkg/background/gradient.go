package background

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrInvalidStop is returned when a gradient stop lies outside [0, 1]
var ErrInvalidStop = errors.New("gradient stop out of range")

type stop struct {
	position float64
	color    core.Color
}

// Gradient blends between color stops by the vertical component of the ray.
// Stop 0 is straight down and stop 1 straight up.
type Gradient struct {
	stops []stop // sorted ascending by position
}

// NewGradient creates a gradient from bottom (0) to top (1)
func NewGradient(top, bottom core.Color) *Gradient {
	return &Gradient{stops: []stop{
		{position: 0, color: bottom},
		{position: 1, color: top},
	}}
}

// AddStop inserts a color at position in [0, 1]. Gradients are not safe to
// modify while a render is reading them.
func (g *Gradient) AddStop(position float64, color core.Color) error {
	if !(position >= 0 && position <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidStop, position)
	}

	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].position > position })
	g.stops = append(g.stops, stop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = stop{position: position, color: color}
	return nil
}

func (g *Gradient) Color(ray core.Ray) core.Color {
	amount := ray.Direction.Y/2 + 0.5

	// first stop strictly above amount
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].position > amount })
	if i == 0 {
		return g.stops[0].color
	}
	lower := g.stops[i-1]
	if i == len(g.stops) || lower.position == amount {
		return lower.color
	}
	upper := g.stops[i]

	span := upper.position - lower.position
	return upper.color.Scale((amount - lower.position) / span).
		Add(lower.color.Scale((upper.position - amount) / span))
}

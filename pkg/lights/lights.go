package lights

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// AmbientLight lights every surface evenly and is never shadowed
type AmbientLight struct {
	Color core.Color
	Power float64
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Color, power float64) *AmbientLight {
	return &AmbientLight{Color: color, Power: power}
}

func (l *AmbientLight) Type() LightType { return LightTypeAmbient }

func (l *AmbientLight) Emission() (core.Color, float64) { return l.Color, l.Power }

func (l *AmbientLight) Sample(point core.Vec3) (LightSample, bool) {
	return LightSample{}, false
}

// PointLight radiates from a single position
type PointLight struct {
	Color    core.Color
	Position core.Vec3
	Power    float64
}

// NewPointLight creates a point light
func NewPointLight(color core.Color, position core.Vec3, power float64) *PointLight {
	return &PointLight{Color: color, Position: position, Power: power}
}

func (l *PointLight) Type() LightType { return LightTypePoint }

func (l *PointLight) Emission() (core.Color, float64) { return l.Color, l.Power }

// Sample implements Light. A point sitting on the light has no direction to it.
func (l *PointLight) Sample(point core.Vec3) (LightSample, bool) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return LightSample{}, false
	}
	return LightSample{Direction: toLight.Multiply(1 / distance), Distance: distance}, true
}

// SunLight shines from infinitely far away along a fixed direction
type SunLight struct {
	Color     core.Color
	Direction core.Vec3 // Unit direction the light travels in
	Power     float64
}

// NewSunLight creates a directional light travelling along direction
func NewSunLight(color core.Color, direction core.Vec3, power float64) *SunLight {
	return &SunLight{Color: color, Direction: direction.Normalize(), Power: power}
}

func (l *SunLight) Type() LightType { return LightTypeSun }

func (l *SunLight) Emission() (core.Color, float64) { return l.Color, l.Power }

func (l *SunLight) Sample(point core.Vec3) (LightSample, bool) {
	return LightSample{Direction: l.Direction.Negate(), Distance: math.Inf(1)}, true
}

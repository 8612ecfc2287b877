package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

type LightType string

const (
	LightTypeAmbient LightType = "ambient"
	LightTypePoint   LightType = "point"
	LightTypeSun     LightType = "sun"
)

// Light is one of AmbientLight, PointLight or SunLight. Lights are immutable.
type Light interface {
	Type() LightType

	// Emission returns the light color and its power multiplier
	Emission() (core.Color, float64)

	// Sample returns the direction and distance from point toward the light.
	// Ambient light has no direction and reports ok=false.
	Sample(point core.Vec3) (sample LightSample, ok bool)
}

// LightSample describes the path from a shading point to a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light, +Inf for directional lights
}

package material

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Material describes how a surface responds to light. Materials are built once
// by the scene and shared read-only between shapes and render workers.
type Material struct {
	Ambient  core.Color // Color under ambient light
	Diffuse  core.Color // Lambertian color, also the color of an emitter
	Specular core.Color
	Reflect  core.Color

	Transparency  float64
	RefractIndex  float64
	RefractAmount float64
	ReflectAmount float64 // Fraction of the mirror-reflected color added, in [0,1]

	Emitter bool // Emitters return Diffuse directly and ignore lighting
}

// NewMaterial creates an opaque, non-reflective material with every color set to c
func NewMaterial(c core.Color) *Material {
	return &Material{
		Ambient:      c,
		Diffuse:      c,
		Specular:     c,
		Reflect:      c,
		Transparency: 1,
		RefractIndex: 1,
	}
}

// NewReflective creates a material that mirrors amount of the reflected color
func NewReflective(c core.Color, amount float64) *Material {
	m := NewMaterial(c)
	m.ReflectAmount = amount
	return m
}

// NewEmitter creates a material that glows with c regardless of lighting
func NewEmitter(c core.Color) *Material {
	m := NewMaterial(c)
	m.Emitter = true
	return m
}

package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NoIntersection is the distance reported when a ray has no forward hit
const NoIntersection = -1.0

// Shape is a geometric primitive that can be hit by rays. The set of shapes
// is closed: Sphere, Triangle and Circle. Shapes are immutable and safe for
// concurrent use.
type Shape interface {
	// DistanceToIntersect returns the distance along the ray to the nearest
	// forward hit, or a negative value (NoIntersection) when there is none
	DistanceToIntersect(ray core.Ray) float64
	// Intersect describes the hit; ok is false exactly when
	// DistanceToIntersect is negative
	Intersect(ray core.Ray) (hit RayIntersect, ok bool)
	Material() *material.Material
	// TextureMapping may be nil
	TextureMapping() material.TextureMapping
}

// surface holds what every shape carries besides its geometry
type surface struct {
	material *material.Material
	mapping  material.TextureMapping
}

// Material returns the shape's material
func (s surface) Material() *material.Material {
	return s.material
}

// TextureMapping returns the shape's texture mapping, or nil
func (s surface) TextureMapping() material.TextureMapping {
	return s.mapping
}

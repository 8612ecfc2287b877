package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. mapping may be nil.
func NewSphere(center core.Vec3, radius float64, mat *material.Material, mapping material.TextureMapping) *Sphere {
	return &Sphere{
		surface: surface{material: mat, mapping: mapping},
		Center:  center,
		Radius:  radius,
	}
}

// DistanceToIntersect returns the distance to the near root only. Rays that
// start inside the sphere report no intersection.
func (s *Sphere) DistanceToIntersect(ray core.Ray) float64 {
	// Projection of the center onto the ray
	v := ray.Direction.Dot(s.Center.Subtract(ray.Origin))
	c := ray.Origin.Subtract(s.Center).Length()
	d := s.Radius*s.Radius - (c*c - v*v)
	if d < 0 {
		return NoIntersection
	}

	distance := v - math.Sqrt(d)
	if distance < 0 || math.IsNaN(distance) {
		return NoIntersection
	}
	return distance
}

// Intersect implements Shape
func (s *Sphere) Intersect(ray core.Ray) (RayIntersect, bool) {
	distance := s.DistanceToIntersect(ray)
	if distance < 0 {
		return RayIntersect{}, false
	}

	normal := ray.At(distance).Subtract(s.Center).Normalize()
	return newRayIntersect(s, ray, distance, normal), true
}

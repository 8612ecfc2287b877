package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Circle is a flat disc spanned by two edge vectors from its center. With
// perpendicular edges of equal length it is a circle of that radius;
// otherwise it is an ellipse. Circles are visible from both sides.
type Circle struct {
	surface
	Center core.Vec3
	U, V   core.Vec3 // Edges p1-center and p2-center
	normal core.Vec3
}

// NewCircle creates a disc through p1 and p2 around center
func NewCircle(center, p1, p2 core.Vec3, mat *material.Material, mapping material.TextureMapping) *Circle {
	u := p1.Subtract(center)
	v := p2.Subtract(center)

	return &Circle{
		surface: surface{material: mat, mapping: mapping},
		Center:  center,
		U:       u,
		V:       v,
		normal:  u.Cross(v).Normalize(),
	}
}

// Normal returns the disc's unit normal
func (c *Circle) Normal() core.Vec3 {
	return c.normal
}

// DistanceToIntersect implements Shape
func (c *Circle) DistanceToIntersect(ray core.Ray) float64 {
	a, b, distance, ok := planeCoordinates(c.Center, c.U, c.V, ray)
	if !ok {
		return NoIntersection
	}
	// Outside the unit disc in (u, v) coordinates
	if a*a+b*b > 1 {
		return NoIntersection
	}
	if distance < 0 {
		return NoIntersection
	}
	return distance
}

// Intersect implements Shape
func (c *Circle) Intersect(ray core.Ray) (RayIntersect, bool) {
	distance := c.DistanceToIntersect(ray)
	if distance < 0 {
		return RayIntersect{}, false
	}
	return newRayIntersect(c, ray, distance, c.normal), true
}

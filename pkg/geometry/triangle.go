package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices. The
// winding p0 -> p1 -> p2 fixes the normal: (p1-p0) x (p2-p0).
type Triangle struct {
	surface
	P0     core.Vec3
	U, V   core.Vec3 // Edges p1-p0 and p2-p0
	normal core.Vec3

	// CullBackfaces rejects rays travelling along the normal
	CullBackfaces bool
}

// NewTriangle creates a one-sided triangle that is invisible from behind
func NewTriangle(p0, p1, p2 core.Vec3, mat *material.Material, mapping material.TextureMapping) *Triangle {
	u := p1.Subtract(p0)
	v := p2.Subtract(p0)

	return &Triangle{
		surface:       surface{material: mat, mapping: mapping},
		P0:            p0,
		U:             u,
		V:             v,
		normal:        u.Cross(v).Normalize(),
		CullBackfaces: true,
	}
}

// NewDoubleSidedTriangle creates a triangle that is hit from both sides
func NewDoubleSidedTriangle(p0, p1, p2 core.Vec3, mat *material.Material, mapping material.TextureMapping) *Triangle {
	t := NewTriangle(p0, p1, p2, mat, mapping)
	t.CullBackfaces = false
	return t
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// DistanceToIntersect implements Shape
func (t *Triangle) DistanceToIntersect(ray core.Ray) float64 {
	if t.CullBackfaces && ray.Direction.Dot(t.normal) >= 0 {
		return NoIntersection
	}

	a, b, distance, ok := planeCoordinates(t.P0, t.U, t.V, ray)
	if !ok {
		return NoIntersection
	}
	// Outside the triangle
	if a < 0 || b < 0 || a+b > 1 {
		return NoIntersection
	}
	if distance < 0 {
		return NoIntersection
	}
	return distance
}

// Intersect implements Shape
func (t *Triangle) Intersect(ray core.Ray) (RayIntersect, bool) {
	distance := t.DistanceToIntersect(ray)
	if distance < 0 {
		return RayIntersect{}, false
	}
	return newRayIntersect(t, ray, distance, t.normal), true
}

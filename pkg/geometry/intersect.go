package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// RayIntersect describes where a ray meets a shape. It is a value: Rotated
// returns a new intersect and never modifies the receiver.
type RayIntersect struct {
	Shape      Shape
	Normal     core.Vec3 // Unit surface normal at the hit
	Reflection core.Ray  // Mirror reflection, starting at the hit point
}

// newRayIntersect builds the intersect for a hit at distance along ray
func newRayIntersect(shape Shape, ray core.Ray, distance float64, normal core.Vec3) RayIntersect {
	point := ray.At(distance)
	return RayIntersect{
		Shape:      shape,
		Normal:     normal,
		Reflection: core.Ray{Origin: point, Direction: core.Reflect(ray.Direction, normal)},
	}
}

// Point returns the hit position
func (ri RayIntersect) Point() core.Vec3 {
	return ri.Reflection.Origin
}

// Surface returns the hit as seen by texture mappings
func (ri RayIntersect) Surface() material.Surface {
	return material.Surface{Point: ri.Point(), Normal: ri.Normal}
}

// Rotated returns a copy with the normal turned by r and the reflection
// direction turned by r twice. Used for normal mapping.
func (ri RayIntersect) Rotated(r core.Rotation) RayIntersect {
	return RayIntersect{
		Shape:      ri.Shape,
		Normal:     r.Apply(ri.Normal).Normalize(),
		Reflection: core.NewRay(ri.Reflection.Origin, r.Apply(r.Apply(ri.Reflection.Direction))),
	}
}

// Closest returns the nearest hit among shapes. Ties go to the shape that
// comes first.
func Closest(shapes []Shape, ray core.Ray) (RayIntersect, bool) {
	var closest Shape
	distance := math.MaxFloat64

	for _, shape := range shapes {
		d := shape.DistanceToIntersect(ray)
		if d < 0 {
			continue
		}
		if d < distance {
			closest = shape
			distance = d
		}
	}

	if closest == nil {
		return RayIntersect{}, false
	}
	return closest.Intersect(ray)
}

// Occluded reports whether any shape is hit closer than maxDistance
func Occluded(shapes []Shape, ray core.Ray, maxDistance float64) bool {
	for _, shape := range shapes {
		d := shape.DistanceToIntersect(ray)
		if d >= 0 && d < maxDistance {
			return true
		}
	}
	return false
}

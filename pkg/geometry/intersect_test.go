package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 0), 1, nil, nil)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, nil, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit, ok := Closest([]Shape{far, near}, ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Shape != near {
		t.Error("Expected the nearer sphere regardless of order")
	}

	if _, ok := Closest([]Shape{far, near}, core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 0, 0))); ok {
		t.Error("Expected no hit")
	}
	if _, ok := Closest(nil, ray); ok {
		t.Error("Expected no hit without shapes")
	}
}

func TestClosest_TiesGoToFirst(t *testing.T) {
	red := material.NewMaterial(core.Red)
	blue := material.NewMaterial(core.Blue)
	first := NewSphere(core.NewVec3(0, 0, 0), 1, red, nil)
	second := NewSphere(core.NewVec3(0, 0, 0), 1, blue, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit, ok := Closest([]Shape{first, second}, ray)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Shape.Material() != red {
		t.Error("Expected the first of two coincident shapes to win")
	}
}

func TestOccluded(t *testing.T) {
	blocker := NewSphere(core.NewVec3(0, 0, 5), 1, nil, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if !Occluded([]Shape{blocker}, ray, math.Inf(1)) {
		t.Error("Expected occlusion with unbounded distance")
	}
	if Occluded([]Shape{blocker}, ray, 3) {
		t.Error("Expected no occlusion when the blocker is past the light")
	}
}

func TestRayIntersect_RotatedReturnsCopy(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil, nil)
	hit, ok := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	original := hit

	// 90 degrees about x: z -> -y, y -> z
	quarterTurn := core.NewRotationFromColumns(
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, -1, 0),
	)
	rotated := hit.Rotated(quarterTurn)

	if hit != original {
		t.Error("Expected Rotated to leave the receiver unchanged")
	}
	assertVec(t, "rotated normal", core.NewVec3(0, -1, 0), rotated.Normal)
	// Reflection (0,0,1) is turned twice: (0,0,1) -> (0,-1,0) -> (0,0,-1)
	assertVec(t, "rotated reflection", core.NewVec3(0, 0, -1), rotated.Reflection.Direction)
	assertVec(t, "rotated origin", hit.Point(), rotated.Point())
	if rotated.Shape != sphere {
		t.Error("Expected the rotated intersect to keep its shape")
	}

	s := hit.Surface()
	if s.Point != hit.Point() || s.Normal != hit.Normal {
		t.Error("Expected surface to mirror the intersect")
	}
}

package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// planeCoordinates solves origin + t·direction = p0 + a·u + b·v for (a, b, t).
// ok is false when the system is singular or ill-conditioned, which happens
// when the ray runs parallel to the plane spanned by u and v.
func planeCoordinates(p0, u, v core.Vec3, ray core.Ray) (a, b, t float64, ok bool) {
	d := ray.Direction
	left := mat.NewDense(3, 3, []float64{
		u.X, v.X, -d.X,
		u.Y, v.Y, -d.Y,
		u.Z, v.Z, -d.Z,
	})
	rhs := ray.Origin.Subtract(p0)
	right := mat.NewVecDense(3, []float64{rhs.X, rhs.Y, rhs.Z})

	var solution mat.VecDense
	if err := solution.SolveVec(left, right); err != nil {
		return 0, 0, 0, false
	}

	a, b, t = solution.AtVec(0), solution.AtVec(1), solution.AtVec(2)
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(t) {
		return 0, 0, 0, false
	}
	return a, b, t, true
}

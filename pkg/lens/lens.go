package lens

import (
	"image"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Lens maps a pixel to a ray in camera space, looking down +z with +y up.
// The camera rotates and offsets the ray into world space.
type Lens interface {
	PointToRay(p image.Point) core.Ray
}

// SimpleLens is a pinhole perspective lens. The shorter image axis spans
// [-scale, scale] on an image plane distance units in front of the origin.
type SimpleLens struct {
	halfWidth  float64
	halfHeight float64
	scale      float64
	distance   float64
}

// NewSimpleLens creates a perspective lens for a width x height image
func NewSimpleLens(width, height int, scale, distance float64) *SimpleLens {
	return &SimpleLens{
		halfWidth:  float64(width) / 2,
		halfHeight: float64(height) / 2,
		scale:      scale,
		distance:   distance,
	}
}

func (l *SimpleLens) PointToRay(p image.Point) core.Ray {
	smaller := math.Min(l.halfWidth, l.halfHeight)
	x := (float64(p.X) - l.halfWidth) / smaller * l.scale
	y := (float64(p.Y) - l.halfHeight) / smaller * l.scale

	return core.NewRay(core.Vec3{}, core.NewVec3(x, -y, l.distance))
}

// FisheyeLens bends rays outward by the sine of the pixel's offset from centre
type FisheyeLens struct {
	width  float64
	height float64
	amount float64
}

// NewFisheyeLens creates a fisheye lens. amount is the field of view as a fraction of π.
func NewFisheyeLens(width, height int, amount float64) *FisheyeLens {
	return &FisheyeLens{
		width:  float64(width),
		height: float64(height),
		amount: amount * math.Pi,
	}
}

func (l *FisheyeLens) PointToRay(p image.Point) core.Ray {
	x := float64(p.X)/l.width*2 - 1
	y := float64(p.Y)/l.height*2 - 1

	direction := core.NewVec3(math.Sin(x)*l.amount, -math.Sin(y)*l.amount, 1).Normalize()
	return core.Ray{Origin: direction.Multiply(0.25), Direction: direction}
}

// OrthographicLens casts parallel rays from an image plane through the origin
type OrthographicLens struct {
	halfWidth  int
	halfHeight int
	scaleX     float64
	scaleY     float64
}

// NewOrthographicLens creates a lens where one pixel spans scaleX by scaleY world units
func NewOrthographicLens(width, height int, scaleX, scaleY float64) *OrthographicLens {
	return &OrthographicLens{
		halfWidth:  width / 2,
		halfHeight: height / 2,
		scaleX:     scaleX,
		scaleY:     scaleY,
	}
}

func (l *OrthographicLens) PointToRay(p image.Point) core.Ray {
	origin := core.NewVec3(
		float64(p.X-l.halfWidth)*l.scaleX,
		-float64(p.Y-l.halfHeight)*l.scaleY,
		0,
	)
	return core.Ray{Origin: origin, Direction: core.NewVec3(0, 0, 1)}
}

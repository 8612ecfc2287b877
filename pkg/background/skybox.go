package background

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// face is one square of the skybox cross, addressed by its cell offset
type face struct {
	col, row int
}

// Cell offsets of each face in a 4x3 cross. The middle row holds back, left,
// front and right; top and bottom sit above and below left.
var (
	faceBack   = face{0, 1}
	faceLeft   = face{1, 1}
	faceFront  = face{2, 1}
	faceRight  = face{3, 1}
	faceTop    = face{1, 0}
	faceBottom = face{1, 2}
)

// SkyBox maps ray directions onto the six faces of a cube unfolded into one image
type SkyBox struct {
	image      *core.Bitmap
	faceWidth  int
	faceHeight int
}

// ErrInvalidSkyBox is returned when an image is too small to hold six faces
var ErrInvalidSkyBox = errors.New("skybox image must be at least 4x3 pixels")

// NewSkyBox creates a skybox from a 4x3 cross layout image
func NewSkyBox(image *core.Bitmap) (*SkyBox, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: no image", ErrInvalidSkyBox)
	}
	if image.Width < 4 || image.Height < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSkyBox, image.Width, image.Height)
	}
	return &SkyBox{
		image:      image,
		faceWidth:  image.Width / 4,
		faceHeight: image.Height / 3,
	}, nil
}

func (s *SkyBox) Color(ray core.Ray) core.Color {
	d := ray.Direction
	absX, absY, absZ := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	switch {
	case absX >= absY && absX >= absZ:
		if d.X > 0 {
			return s.sample(faceLeft, d.Z/d.X, -d.Y/d.X)
		}
		return s.sample(faceRight, d.Z/d.X, d.Y/d.X)
	case absY >= absX && absY >= absZ:
		if d.Y > 0 {
			return s.sample(faceTop, d.Z/d.Y, d.X/d.Y)
		}
		return s.sample(faceBottom, -d.Z/d.Y, d.X/d.Y)
	default:
		if d.Z > 0 {
			return s.sample(faceFront, -d.X/d.Z, -d.Y/d.Z)
		}
		return s.sample(faceBack, -d.X/d.Z, d.Y/d.Z)
	}
}

// sample reads a face at u, v in [-1, 1], clamping to the face edges
func (s *SkyBox) sample(f face, u, v float64) core.Color {
	halfX := float64(s.faceWidth) / 2
	halfY := float64(s.faceHeight) / 2

	x := clamp(int(u*halfX+halfX), s.faceWidth-1)
	y := clamp(int(v*halfY+halfY), s.faceHeight-1)

	return s.image.At(f.col*s.faceWidth+x, f.row*s.faceHeight+y)
}

func clamp(v, hi int) int {
	if v > hi {
		return hi
	}
	if v < 0 {
		return 0
	}
	return v
}

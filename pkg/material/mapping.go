package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Surface is the part of an intersection a texture mapping needs
type Surface struct {
	Point  core.Vec3
	Normal core.Vec3 // unit length
}

// TextureMapping projects a surface point onto a texture
type TextureMapping interface {
	// Map returns the texture coordinates of the surface point
	Map(s Surface) (x, y float64)
	// Up is the direction that texture-space "up" corresponds to
	Up() core.Vec3
	Texture() *Texture
}

// Diffuse samples the diffuse color of m at s
func Diffuse(m TextureMapping, s Surface) core.Color {
	x, y := m.Map(s)
	return m.Texture().DiffuseAt(x, y)
}

// SpecularAmount samples the specular intensity of m at s
func SpecularAmount(m TextureMapping, s Surface) float64 {
	x, y := m.Map(s)
	return m.Texture().SpecularAt(x, y)
}

// ReflectionAmount samples the reflectivity of m at s
func ReflectionAmount(m TextureMapping, s Surface) float64 {
	x, y := m.Map(s)
	return m.Texture().ReflectionAt(x, y)
}

// Perturbation returns the rotation that bends the surface normal toward the
// normal stored in the texture. worldUp orients the surface frame. The result
// is the identity when the texture has no normal map.
func Perturbation(m TextureMapping, s Surface, worldUp core.Vec3, rotator core.Rotator) core.Rotation {
	x, y := m.Map(s)
	textureNormal := m.Texture().NormalAt(x, y)
	if textureNormal == IdentityNormal {
		return core.Identity()
	}
	if rotator == nil {
		rotator = (*core.RotationCache)(nil)
	}

	nudge := core.NewVec3(0, 0, 0.1)
	up := m.Up()
	// texture space -> surface frame
	textureRotate := rotator.Rotate(textureNormal, up, up.Add(nudge))
	// surface frame -> world
	normalRotate := rotator.Rotate(s.Normal, worldUp, worldUp.Add(nudge))

	return normalRotate.Mul(textureRotate).Mul(normalRotate.Transpose())
}

// FlatMap projects a planar surface onto a texture along two axes. The
// length of each axis is the world-space size of one texture repeat.
type FlatMap struct {
	XAxis   core.Vec3
	YAxis   core.Vec3
	Origin  core.Vec3
	texture *Texture
}

// NewFlatMap creates a planar mapping
func NewFlatMap(xAxis, yAxis, origin core.Vec3, texture *Texture) *FlatMap {
	return &FlatMap{XAxis: xAxis, YAxis: yAxis, Origin: origin, texture: texture}
}

// Map implements TextureMapping
func (f *FlatMap) Map(s Surface) (float64, float64) {
	p := s.Point.Subtract(f.Origin)
	x := f.XAxis.Project(p) * float64(f.texture.Width)
	y := f.YAxis.Project(p) * float64(f.texture.Height)
	return x, y
}

// Up implements TextureMapping
func (f *FlatMap) Up() core.Vec3 {
	return f.YAxis
}

// Texture implements TextureMapping
func (f *FlatMap) Texture() *Texture {
	return f.texture
}

// SphereMap wraps a texture around a sphere using the surface normal
type SphereMap struct {
	texture *Texture
}

// NewSphereMap creates a spherical mapping
func NewSphereMap(texture *Texture) *SphereMap {
	return &SphereMap{texture: texture}
}

// Map implements TextureMapping
func (sm *SphereMap) Map(s Surface) (float64, float64) {
	x := math.Asin(s.Normal.X)/math.Pi + 0.5
	y := math.Asin(s.Normal.Y)/math.Pi + 0.5
	return x * float64(sm.texture.Width) * 2, y * float64(sm.texture.Height) * 2
}

// Up implements TextureMapping
func (sm *SphereMap) Up() core.Vec3 {
	return core.NewVec3(0, 0, 1)
}

// Texture implements TextureMapping
func (sm *SphereMap) Texture() *Texture {
	return sm.texture
}

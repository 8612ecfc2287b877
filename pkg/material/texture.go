package material

import (
	"errors"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrMissingDiffuse is returned when a texture is built without a diffuse map
var ErrMissingDiffuse = errors.New("texture must have a diffuse map")

// IdentityNormal is the normal sampled where a texture has no normal map
var IdentityNormal = core.NewVec3(0, 1, 0)

// Texture bundles the per-channel bitmaps applied to a surface
type Texture struct {
	Diffuse    *core.Bitmap
	Normal     *core.Bitmap // optional
	Specular   *core.Bitmap // optional
	Reflection *core.Bitmap // optional

	// Width and Height scale mapped coordinates. They default to the diffuse
	// bitmap size and can be overridden so one mapping fits several bitmaps.
	Width  int
	Height int
}

// TextureOption configures optional texture channels
type TextureOption func(*Texture)

// WithNormalMap sets the normal map
func WithNormalMap(b *core.Bitmap) TextureOption {
	return func(t *Texture) { t.Normal = b }
}

// WithSpecularMap sets the specular map
func WithSpecularMap(b *core.Bitmap) TextureOption {
	return func(t *Texture) { t.Specular = b }
}

// WithReflectionMap sets the reflection map
func WithReflectionMap(b *core.Bitmap) TextureOption {
	return func(t *Texture) { t.Reflection = b }
}

// WithSize overrides the logical texture size
func WithSize(width, height int) TextureOption {
	return func(t *Texture) {
		t.Width = width
		t.Height = height
	}
}

// NewTexture creates a texture from a diffuse bitmap and options
func NewTexture(diffuse *core.Bitmap, opts ...TextureOption) (*Texture, error) {
	if diffuse == nil {
		return nil, ErrMissingDiffuse
	}

	t := &Texture{
		Diffuse: diffuse,
		Width:   diffuse.Width,
		Height:  diffuse.Height,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// DiffuseAt samples the diffuse map
func (t *Texture) DiffuseAt(x, y float64) core.Color {
	return sampleBilinear(t.Diffuse, x, y)
}

// NormalAt decodes the normal map into a unit vector. Without a normal map
// it returns IdentityNormal.
func (t *Texture) NormalAt(x, y float64) core.Vec3 {
	if t.Normal == nil {
		return IdentityNormal
	}

	c := sampleBilinear(t.Normal, x, y)
	const scale = core.ChannelMax
	return core.NewVec3(
		-(float64(c.R)/scale-0.5)*2,
		-(float64(c.G)/scale-0.5)*2,
		float64(c.B)/scale-0.5,
	).Normalize()
}

// SpecularAt returns the specular intensity in [0,1], or 0 without a specular map
func (t *Texture) SpecularAt(x, y float64) float64 {
	if t.Specular == nil {
		return 0
	}
	return sampleBilinear(t.Specular, x, y).Mean()
}

// ReflectionAt returns the reflectivity in [0,1], or 0 without a reflection map
func (t *Texture) ReflectionAt(x, y float64) float64 {
	if t.Reflection == nil {
		return 0
	}
	return sampleBilinear(t.Reflection, x, y).Mean()
}

// sampleBilinear blends the four pixels around (x, y), wrapping around the
// bitmap edges in both directions
func sampleBilinear(b *core.Bitmap, x, y float64) core.Color {
	x = wrap(x, b.Width)
	y = wrap(y, b.Height)

	left := int(math.Floor(x))
	lower := int(math.Floor(y))
	right := (left + 1) % b.Width
	upper := (lower + 1) % b.Height
	fx := x - float64(left)
	fy := y - float64(lower)

	ll := b.At(left, lower)
	lr := b.At(right, lower)
	ul := b.At(left, upper)
	ur := b.At(right, upper)

	blend := func(a, b, c, d uint8) int {
		v := float64(a)*(1-fx)*(1-fy) +
			float64(b)*fx*(1-fy) +
			float64(c)*(1-fx)*fy +
			float64(d)*fx*fy
		return int(math.Round(v))
	}

	return core.NewColor(
		blend(ll.R, lr.R, ul.R, ur.R),
		blend(ll.G, lr.G, ul.G, ur.G),
		blend(ll.B, lr.B, ul.B, ur.B),
	)
}

// wrap maps v into [0, size). Non-finite coordinates collapse to 0.
func wrap(v float64, size int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	s := float64(size)
	v = math.Mod(v, s)
	if v < 0 {
		v += s
	}
	if v >= s {
		v = 0
	}
	return v
}

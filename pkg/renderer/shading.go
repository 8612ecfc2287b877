package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// worldUp orients the surface frame when normal maps are applied
var worldUp = core.NewVec3(0, 1, 0)

const (
	specularExponent = 8
	cartoonThreshold = 0.2
)

// shader is a read-only snapshot of the scene taken at the start of a render
type shader struct {
	shapes     []geometry.Shape
	lights     []lights.Light
	background background.Background
	shading    ShadingConfig
	maxDepth   int
	rotator    core.Rotator
}

// tracer shades rays for a single tile and counts what it casts
type tracer struct {
	*shader
	stats *RenderStats
}

// shade returns the color seen along ray
func (t *tracer) shade(ray core.Ray) core.Color {
	switch t.shading.Model {
	case ShadingCartoon:
		return t.shadeCartoon(ray)
	case ShadingFlat:
		return t.shadeFlat(ray)
	default:
		return t.shadePhong(ray, 0, 1)
	}
}

// shadePhong shades ray at the given reflection depth. weight is the product
// of the reflect amounts along the path so far.
func (t *tracer) shadePhong(ray core.Ray, depth int, weight float64) core.Color {
	hit, ok := geometry.Closest(t.shapes, ray)
	if !ok {
		return t.background.Color(ray)
	}

	mat := hit.Shape.Material()
	if mat.Emitter {
		return mat.Diffuse
	}

	// Textures are looked up on the unperturbed surface
	mapping := hit.Shape.TextureMapping()
	surface := hit.Surface()

	shaded := hit
	if mapping != nil && t.shading.Normal {
		shaded = hit.Rotated(material.Perturbation(mapping, surface, worldUp, t.rotator))
	}

	normal := shaded.Normal
	if backFacing(hit, ray) {
		normal = normal.Negate()
	}
	origin := shaded.Point().Add(normal.Multiply(surfaceEpsilon))

	ambient, diffuse, specularScale := mat.Ambient, mat.Diffuse, 1.0
	if mapping != nil {
		diffuse = material.Diffuse(mapping, surface)
		ambient = diffuse
		specularScale = material.SpecularAmount(mapping, surface)
	}

	color := core.Black
	for _, light := range t.lights {
		lightColor, power := light.Emission()

		if light.Type() == lights.LightTypeAmbient {
			if t.shading.Diffuse {
				color = color.Add(ambient.Mul(lightColor).Scale(power))
			}
			continue
		}

		toLight, ok := t.visible(light, origin)
		if !ok {
			continue
		}

		if t.shading.Diffuse {
			lambert := math.Max(0, normal.Dot(toLight))
			color = color.Add(diffuse.Mul(lightColor).Scale(lambert * power))
		}

		if t.shading.Specular {
			mirrored := normal.Multiply(2 * toLight.Dot(normal)).Subtract(toLight)
			if amount := ray.Direction.Negate().Dot(mirrored); amount > 0 {
				amount = math.Pow(amount, specularExponent) * specularScale
				color = color.Add(lightColor.Scale(amount * power))
			}
		}
	}

	if !t.shading.Reflection {
		return color
	}

	reflectAmount := mat.ReflectAmount
	if mapping != nil {
		reflectAmount = material.ReflectionAmount(mapping, shaded.Surface())
	}
	if reflectAmount <= 0 {
		return color
	}

	next := weight * reflectAmount
	if depth >= t.maxDepth || next < minContribution {
		t.stats.DepthLimitHits++
		return color
	}

	t.stats.ReflectionRays++
	reflection := core.Ray{Origin: origin, Direction: shaded.Reflection.Direction}
	return color.Add(t.shadePhong(reflection, depth+1, next).Scale(reflectAmount))
}

// shadeCartoon lights surfaces fully or not at all, with no textures,
// highlights or reflections
func (t *tracer) shadeCartoon(ray core.Ray) core.Color {
	hit, ok := geometry.Closest(t.shapes, ray)
	if !ok {
		return t.background.Color(ray)
	}

	mat := hit.Shape.Material()
	if mat.Emitter {
		return mat.Diffuse
	}

	normal := hit.Normal
	if backFacing(hit, ray) {
		normal = normal.Negate()
	}
	origin := hit.Point().Add(normal.Multiply(surfaceEpsilon))

	color := core.Black
	for _, light := range t.lights {
		lightColor, power := light.Emission()

		if light.Type() == lights.LightTypeAmbient {
			color = color.Add(mat.Ambient.Mul(lightColor).Scale(power))
			continue
		}

		toLight, ok := t.visible(light, origin)
		if !ok || normal.Dot(toLight) <= cartoonThreshold {
			continue
		}
		color = color.Add(mat.Diffuse.Mul(lightColor).Scale(power))
	}

	return color
}

// shadeFlat returns the material color of whatever the ray hits
func (t *tracer) shadeFlat(ray core.Ray) core.Color {
	hit, ok := geometry.Closest(t.shapes, ray)
	if !ok {
		return t.background.Color(ray)
	}
	return hit.Shape.Material().Diffuse
}

// visible casts a shadow ray from origin toward light. It returns the unit
// direction to the light and false if the light is blocked.
func (t *tracer) visible(light lights.Light, origin core.Vec3) (core.Vec3, bool) {
	sample, ok := light.Sample(origin)
	if !ok {
		return core.Vec3{}, false
	}

	t.stats.ShadowRays++
	shadow := core.Ray{Origin: origin, Direction: sample.Direction}
	if geometry.Occluded(t.shapes, shadow, sample.Distance) {
		return core.Vec3{}, false
	}
	return sample.Direction, true
}

// backFacing reports whether ray struck the side of the surface its normal
// points away from. Two-sided shapes are shaded and offset from the side hit.
func backFacing(hit geometry.RayIntersect, ray core.Ray) bool {
	return hit.Normal.Dot(ray.Direction) > 0
}

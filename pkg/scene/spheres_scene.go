package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// glossy creates a half-transparent mirror-like material
func glossy(c core.Color) *material.Material {
	m := material.NewReflective(c, 0.8)
	m.Transparency = 0.5
	return m
}

// NewSpheresScene creates four glossy spheres resting by a ledge in front of a wall
func NewSpheresScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Width = 512
	cameraConfig.Height = 512

	tan := material.NewReflective(core.NewColor(255, 230, 153), 0.2)
	grey := material.NewMaterial(core.NewColor(128, 128, 128))
	lightGrey := material.NewMaterial(core.NewColor(204, 204, 204))

	const far, near = -80.0, 20.0
	tri := func(a, b, c core.Vec3, m *material.Material) geometry.Shape {
		return geometry.NewDoubleSidedTriangle(a, b, c, m, nil)
	}
	v := core.NewVec3

	shapes := []geometry.Shape{
		// ledge top
		tri(v(-1.5, -5, near), v(-1.5, -5, far), v(-100, -5, near), tan),
		tri(v(-100, -5, near), v(-1.5, -5, far), v(-100, -5, far), tan),
		// ledge bevel
		tri(v(-1, -5.5, far), v(-1.5, -5, far), v(-1.5, -5, near), tan),
		tri(v(-1.5, -5, near), v(-1, -5.5, near), v(-1, -5.5, far), tan),
		// ledge side
		tri(v(-1, -40, far), v(-1, -5.5, far), v(-1, -5.5, 10), tan),
		tri(v(-1, -40, far), v(-1, -5.5, 10), v(-1, -40, 10), tan),
		// back wall
		tri(v(-100, 100, far), v(-100, -40, far), v(100, -40, far), lightGrey),
		tri(v(100, -40, far), v(100, 100, far), v(-100, 100, far), lightGrey),
		// lower floor
		tri(v(100, -40, far), v(-1, -40, far), v(-1, -40, near), grey),
		tri(v(-1, -40, near), v(100, -40, near), v(-1, -40, far), grey),

		geometry.NewSphere(v(-4, -2, -10), 3, glossy(core.NewColor(230, 230, 230)), nil),
		geometry.NewSphere(v(-2, -4, -6), 1, glossy(core.NewColor(230, 51, 51)), nil),
		geometry.NewSphere(v(-6, -3, -4), 2, glossy(core.NewColor(102, 204, 230)), nil),
		geometry.NewSphere(v(-6, -4, 2), 1, glossy(core.NewColor(230, 204, 77)), nil),
	}

	sceneLights := []lights.Light{
		lights.NewSunLight(core.NewColor(51, 102, 204), v(-3, -1, -1), 0.3),
		lights.NewSunLight(core.NewColor(255, 206, 122), v(2, -1, -1), 0.3),
		lights.NewSunLight(core.NewColor(128, 128, 128), v(2, -1, -1), 0.3),
	}

	var bg background.Background = background.NewFlat(core.Red)
	if opts.Skybox != nil {
		sky, err := background.NewSkyBox(opts.Skybox)
		if err != nil {
			return nil, err
		}
		bg = sky
	}

	return &Scene{
		Shapes:       shapes,
		Lights:       sceneLights,
		Background:   bg,
		Position:     v(0, 0, 5),
		Angle:        v(0, 0, -1),
		Up:           v(0, 1, 0),
		LensScale:    1,
		LensDistance: 1,
		CameraConfig: cameraConfig,
	}, nil
}

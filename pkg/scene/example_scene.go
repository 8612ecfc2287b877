package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

const (
	exampleFrameRate = 30
	exampleLength    = 4 // Seconds per orbit
)

// NewExampleScene creates a mirror ball on a reflective floor, with a pink
// sphere and a point light orbiting it once every exampleLength seconds
func NewExampleScene(opts Options) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.Width = 300
	cameraConfig.Height = 200

	groundTexture := opts.Texture
	if groundTexture == nil {
		var err error
		groundTexture, err = material.NewTexture(
			Checkerboard(64, 8, core.Gray.Darker(), core.White.Darker()),
			material.WithReflectionMap(core.NewSolidBitmap(1, 1, core.NewColor(191, 191, 191))),
		)
		if err != nil {
			return nil, err
		}
	}

	ground := material.NewReflective(core.Gray.Darker(), 0.75)
	ball := material.NewReflective(core.White.Darker(), 0.5)
	pink := material.NewMaterial(core.Magenta)
	green := material.NewMaterial(core.Green.Darker())

	groundMap := material.NewFlatMap(
		core.NewVec3(5, 0, 0),
		core.NewVec3(0, 0, 5),
		core.Vec3{},
		groundTexture,
	)

	orbit := opts.Frame / (exampleFrameRate * exampleLength) * (2 * math.Pi)

	shapes := []geometry.Shape{
		geometry.NewTriangle(
			core.NewVec3(10, -1, -10),
			core.NewVec3(-10, -1, -10),
			core.NewVec3(-10, -1, 10),
			ground, groundMap),
		geometry.NewTriangle(
			core.NewVec3(10, -1, -10),
			core.NewVec3(-10, -1, 10),
			core.NewVec3(10, -1, 10),
			ground, groundMap),
		geometry.NewSphere(core.Vec3{}, 1, ball, nil),
		geometry.NewSphere(core.NewVec3(math.Sin(orbit)*-5, 0, math.Cos(orbit)*5), 1, pink, nil),
		geometry.NewCircle(
			core.NewVec3(-3, -0.5, 0),
			core.NewVec3(-1, -0.5, 0),
			core.NewVec3(-3, -0.5, -1),
			green, nil),
	}

	sceneLights := []lights.Light{
		lights.NewPointLight(core.White, core.NewVec3(math.Sin(orbit)*5, 2, math.Cos(orbit)*5), 0.5),
		lights.NewAmbientLight(core.White, 0.25),
	}

	var bg background.Background
	if opts.Skybox != nil {
		sky, err := background.NewSkyBox(opts.Skybox)
		if err != nil {
			return nil, err
		}
		bg = sky
	} else {
		gradient := background.NewGradient(core.Magenta, core.Hex(0x2A1600))
		if err := gradient.AddStop(0.5, core.Orange); err != nil {
			return nil, err
		}
		if err := gradient.AddStop(0.49, core.Hex(0x2A1600)); err != nil {
			return nil, err
		}
		bg = gradient
	}

	return &Scene{
		Shapes:       shapes,
		Lights:       sceneLights,
		Background:   bg,
		Position:     core.NewVec3(0, 1, -1.5),
		Angle:        core.NewVec3(0, 0, 1),
		Up:           core.NewVec3(0, 1, 0),
		LensScale:    2,
		LensDistance: 3,
		CameraConfig: cameraConfig,
	}, nil
}

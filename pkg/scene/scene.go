package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lens"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when no scene is registered under a name
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes     []geometry.Shape
	Lights     []lights.Light
	Background background.Background

	Position core.Vec3 // Camera position
	Angle    core.Vec3 // Viewing direction
	Up       core.Vec3

	LensScale    float64 // Sensor scale of the default simple lens
	LensDistance float64 // Image plane distance of the default simple lens

	CameraConfig renderer.CameraConfig // Suggested render settings
}

// Options customize a built-in scene
type Options struct {
	Frame   float64           // Animation frame for scenes that move
	Skybox  *core.Bitmap      // Replaces the background when set
	Texture *material.Texture // Replaces the ground texture when set
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builder struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var registry = map[string]builder{
	"example": {
		info:  SceneInfo{Name: "example", Description: "Mirror ball on a textured floor with an orbiting sphere"},
		build: NewExampleScene,
	},
	"spheres": {
		info:  SceneInfo{Name: "spheres", Description: "Reflective spheres on a ledge lit by three suns"},
		build: NewSpheresScene,
	},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, b := range registry {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(opts)
}

// Configure points camera at the scene and hands it the scene's contents.
// The camera keeps its own size; the default lens is fitted to it.
func (s *Scene) Configure(camera *renderer.Camera) error {
	if err := camera.SetPosition(s.Position); err != nil {
		return err
	}
	if err := camera.SetOrientation(s.Angle, s.Up); err != nil {
		return err
	}
	if err := camera.SetGeometry(s.Shapes); err != nil {
		return err
	}
	if err := camera.SetLights(s.Lights); err != nil {
		return err
	}
	camera.SetBackground(s.Background)

	cfg := camera.Config()
	camera.SetLens(lens.NewSimpleLens(cfg.Width, cfg.Height, s.LensScale, s.LensDistance))
	return nil
}

// Checkerboard creates a size x size bitmap of squares alternating between a and b
func Checkerboard(size, squares int, a, b core.Color) *core.Bitmap {
	bmp := core.NewSolidBitmap(size, size, a)
	cell := max(1, size/squares)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 1 {
				bmp.Set(x, y, b)
			}
		}
	}
	return bmp
}

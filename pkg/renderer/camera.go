package renderer

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lens"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Camera holds everything needed to render a scene. Setters validate
// eagerly; a Camera must not be reconfigured while Render is running.
type Camera struct {
	config CameraConfig

	position core.Vec3
	angle    core.Vec3 // Viewing direction
	up       core.Vec3
	rotation core.Rotation

	lens       lens.Lens
	background background.Background
	shapes     []geometry.Shape
	lights     []lights.Light

	cache  *core.RotationCache
	logger core.Logger
}

// NewCamera creates a camera at the origin looking down +z with +y up
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		config: config,
		angle:  core.NewVec3(0, 0, 1),
		up:     core.NewVec3(0, 1, 0),
		cache:  core.NewDefaultRotationCache(),
		logger: silentLogger{},
	}
	c.calcRotation()
	return c, nil
}

// Config returns the current scalar settings
func (c *Camera) Config() CameraConfig {
	return c.config
}

// update applies change to a copy of the config and keeps it only if it is valid
func (c *Camera) update(change func(*CameraConfig)) error {
	config := c.config
	change(&config)
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	return nil
}

// SetSize sets the output image dimensions
func (c *Camera) SetSize(width, height int) error {
	return c.update(func(cfg *CameraConfig) {
		cfg.Width = width
		cfg.Height = height
	})
}

// SetSamples sets the number of rays averaged per pixel
func (c *Camera) SetSamples(samples int) error {
	return c.update(func(cfg *CameraConfig) { cfg.Samples = samples })
}

// SetBlur sets how far each extra sample's direction may be jittered
func (c *Camera) SetBlur(blur float64) error {
	return c.update(func(cfg *CameraConfig) { cfg.Blur = blur })
}

// SetMaxDepth sets the maximum number of mirror bounces
func (c *Camera) SetMaxDepth(depth int) error {
	return c.update(func(cfg *CameraConfig) { cfg.MaxDepth = depth })
}

// SetShading selects the shading model and terms
func (c *Camera) SetShading(shading ShadingConfig) error {
	return c.update(func(cfg *CameraConfig) { cfg.Shading = shading })
}

// SetWorkers sets the render parallelism, 0 uses every CPU
func (c *Camera) SetWorkers(workers int) error {
	return c.update(func(cfg *CameraConfig) { cfg.NumWorkers = workers })
}

// SetPosition moves the camera
func (c *Camera) SetPosition(position core.Vec3) error {
	if position.IsNaN() {
		return fmt.Errorf("%w: position %v", ErrInvalidConfig, position)
	}
	c.position = position
	return nil
}

// SetOrientation points the camera along angle, rolled so that up is up
func (c *Camera) SetOrientation(angle, up core.Vec3) error {
	if angle.IsZero() || angle.IsNaN() {
		return fmt.Errorf("%w: viewing direction %v", ErrInvalidConfig, angle)
	}
	if up.IsZero() || up.IsNaN() {
		return fmt.Errorf("%w: up direction %v", ErrInvalidConfig, up)
	}
	angle = angle.Normalize()
	rotation := c.rotate(angle, up)
	if rotation.IsNaN() {
		return fmt.Errorf("%w: no finite basis for direction %v and up %v", ErrInvalidConfig, angle, up)
	}
	c.angle = angle
	c.up = up
	c.rotation = rotation
	return nil
}

// LookAt turns the camera toward target, keeping the current up direction
func (c *Camera) LookAt(target core.Vec3) error {
	if target == c.position {
		return fmt.Errorf("%w: cannot look at own position %v", ErrInvalidConfig, target)
	}
	return c.SetOrientation(target.Subtract(c.position), c.up)
}

// SetLens sets the lens. nil uses a simple perspective lens sized to the image.
func (c *Camera) SetLens(l lens.Lens) {
	c.lens = l
}

// SetBackground sets the color of rays that hit nothing. nil is black.
func (c *Camera) SetBackground(bg background.Background) {
	c.background = bg
}

// SetGeometry replaces the shapes in the scene
func (c *Camera) SetGeometry(shapes []geometry.Shape) error {
	for i, s := range shapes {
		if s == nil {
			return fmt.Errorf("%w: shape %d is nil", ErrInvalidConfig, i)
		}
		if s.Material() == nil {
			return fmt.Errorf("%w: shape %d has no material", ErrInvalidConfig, i)
		}
	}
	c.shapes = append([]geometry.Shape(nil), shapes...)
	return nil
}

// SetLights replaces the lights in the scene
func (c *Camera) SetLights(ls []lights.Light) error {
	for i, l := range ls {
		if l == nil {
			return fmt.Errorf("%w: light %d is nil", ErrInvalidConfig, i)
		}
	}
	c.lights = append([]lights.Light(nil), ls...)
	return nil
}

// SetRotationCache replaces the rotation cache. A nil cache disables caching.
// Caches may be shared between cameras.
func (c *Camera) SetRotationCache(cache *core.RotationCache) {
	c.cache = cache
	c.calcRotation()
}

// RotationCache returns the cache used for camera and normal-map bases
func (c *Camera) RotationCache() *core.RotationCache {
	return c.cache
}

// SetLogger sets where render progress is reported. nil silences the camera.
func (c *Camera) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = silentLogger{}
	}
	c.logger = logger
}

// Rotation returns the basis mapping lens space to world space
func (c *Camera) Rotation() core.Rotation {
	return c.rotation
}

func (c *Camera) calcRotation() {
	c.rotation = c.rotate(c.angle, c.up)
}

func (c *Camera) rotate(angle, up core.Vec3) core.Rotation {
	return c.cache.Rotate(angle, up, up.Add(core.NewVec3(0, 0, 1)))
}

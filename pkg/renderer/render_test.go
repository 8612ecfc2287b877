package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lens"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// newQuadrantCamera renders a 2x2 image from (0,0,-5) toward a unit sphere at
// the origin. Only the bottom-right pixel's primary ray hits the sphere.
func newQuadrantCamera(t *testing.T, mat *material.Material, ls ...lights.Light) *Camera {
	t.Helper()
	c := newTestCamera(t)
	must(t, c.SetSize(2, 2))
	must(t, c.SetPosition(core.NewVec3(0, 0, -5)))
	must(t, c.SetGeometry([]geometry.Shape{geometry.NewSphere(core.Vec3{}, 1, mat, nil)}))
	must(t, c.SetLights(ls))
	c.SetBackground(background.NewFlat(core.Black))
	return c
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestRender_QuadrantSphere(t *testing.T) {
	c := newQuadrantCamera(t, material.NewMaterial(core.Red), lights.NewAmbientLight(core.White, 1))

	frame, stats := c.Render()

	expected := map[[2]int]core.Color{
		{0, 0}: core.Black,
		{1, 0}: core.Black,
		{0, 1}: core.Black,
		{1, 1}: core.Red,
	}
	for p, want := range expected {
		if got := frame.Get(p[0], p[1]); got != want {
			t.Errorf("Pixel %v: expected %v, got %v", p, want, got)
		}
	}

	if stats.TotalPixels != 4 || stats.TotalSamples != 4 || stats.AverageSamples != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	again, _ := c.Render()
	if !bytes.Equal(frame.Pix, again.Pix) {
		t.Errorf("Repeated renders differ: %v vs %v", frame.Pix, again.Pix)
	}
}

func TestRender_Emitter(t *testing.T) {
	// Emitters ignore lighting entirely, so no lights are needed
	c := newQuadrantCamera(t, material.NewEmitter(core.Green))

	frame, stats := c.Render()
	if got := frame.Get(1, 1); got != core.Green {
		t.Errorf("Expected emitter color, got %v", got)
	}
	if stats.ShadowRays != 0 {
		t.Errorf("Expected no shadow rays, got %d", stats.ShadowRays)
	}
}

func TestRender_ShadingModels(t *testing.T) {
	// The sun travels away from the camera, lighting the sphere head on
	sun := lights.NewSunLight(core.White, core.NewVec3(0, 0, 1), 0.5)

	tests := []struct {
		name     string
		shading  ShadingConfig
		mat      *material.Material
		expected core.Color
	}{
		{
			name:     "cartoon lights fully above the threshold",
			shading:  ShadingConfig{Model: ShadingCartoon},
			mat:      material.NewMaterial(core.Red),
			expected: core.NewColor(127, 0, 0),
		},
		{
			name:     "flat ignores lights",
			shading:  ShadingConfig{Model: ShadingFlat},
			mat:      material.NewMaterial(core.Blue),
			expected: core.Blue,
		},
		{
			name:     "phong diffuse and specular",
			shading:  DefaultShadingConfig(),
			mat:      material.NewMaterial(core.Red),
			expected: core.NewColor(254, 127, 127),
		},
		{
			name: "phong specular only",
			shading: ShadingConfig{
				Model: ShadingPhong, Specular: true,
			},
			mat:      material.NewMaterial(core.Red),
			expected: core.NewColor(127, 127, 127),
		},
		{
			name: "phong diffuse only",
			shading: ShadingConfig{
				Model: ShadingPhong, Diffuse: true,
			},
			mat:      material.NewMaterial(core.Red),
			expected: core.NewColor(127, 0, 0),
		},
		{
			name:     "phong with every term off",
			shading:  ShadingConfig{Model: ShadingPhong},
			mat:      material.NewMaterial(core.Red),
			expected: core.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newQuadrantCamera(t, tt.mat, sun)
			must(t, c.SetShading(tt.shading))

			frame, _ := c.Render()
			if got := frame.Get(1, 1); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got := frame.Get(0, 0); got != core.Black {
				t.Errorf("Expected background at (0,0), got %v", got)
			}
		})
	}
}

func TestRender_CartoonBelowThreshold(t *testing.T) {
	// Light grazing the surface at n·l = 0.1 leaves only the ambient term
	sun := lights.NewSunLight(core.White, core.NewVec3(0.99498743710662, 0, 0.1), 1)
	ambient := lights.NewAmbientLight(core.White, 0.25)

	c := newQuadrantCamera(t, material.NewMaterial(core.Red), sun, ambient)
	must(t, c.SetShading(ShadingConfig{Model: ShadingCartoon}))

	frame, _ := c.Render()
	if got := frame.Get(1, 1); got != core.NewColor(63, 0, 0) {
		t.Errorf("Expected ambient only, got %v", got)
	}
}

// newShadowCamera looks straight down on a white floor. A sphere hangs
// between the right pixel and the sun; the left pixel sees the sun.
func newShadowCamera(t *testing.T, light lights.Light) *Camera {
	t.Helper()
	c := newTestCamera(t)
	must(t, c.SetSize(2, 1))
	must(t, c.SetPosition(core.NewVec3(0, 10, 0)))
	must(t, c.SetOrientation(core.NewVec3(0, -1, 0), core.NewVec3(0, 0, 1)))
	c.SetLens(lens.NewOrthographicLens(2, 1, 4, 1))

	floor := geometry.NewCircle(core.Vec3{}, core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0),
		material.NewMaterial(core.White), nil)
	blocker := geometry.NewSphere(core.NewVec3(3, 3, 0), 1, material.NewMaterial(core.Red), nil)
	must(t, c.SetGeometry([]geometry.Shape{floor, blocker}))
	must(t, c.SetLights([]lights.Light{light}))
	return c
}

func TestRender_Shadows(t *testing.T) {
	tests := []struct {
		name  string
		light lights.Light
		lit   core.Color
	}{
		{
			name:  "sun",
			light: lights.NewSunLight(core.White, core.NewVec3(-1, -1, 0), 1),
			// Lambert 255·cos45° plus 255·cos⁸45° specular
			lit: core.NewColor(195, 195, 195),
		},
		{
			name:  "point light beyond the blocker",
			light: lights.NewPointLight(core.White, core.NewVec3(100, 100, 0), 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newShadowCamera(t, tt.light)
			frame, stats := c.Render()

			if got := frame.Get(1, 0); got != core.Black {
				t.Errorf("Expected shadowed pixel to be black, got %v", got)
			}
			left := frame.Get(0, 0)
			if left == core.Black {
				t.Error("Expected unshadowed pixel to be lit")
			}
			if tt.lit != (core.Color{}) && left != tt.lit {
				t.Errorf("Expected lit pixel %v, got %v", tt.lit, left)
			}
			if stats.ShadowRays != 2 {
				t.Errorf("Expected 2 shadow rays, got %d", stats.ShadowRays)
			}
		})
	}
}

func TestRender_PointLightBeforeBlocker(t *testing.T) {
	// Occluders past the light do not cast shadows
	light := lights.NewPointLight(core.White, core.NewVec3(1, 1, 0), 1)
	c := newShadowCamera(t, light)

	frame, _ := c.Render()
	if got := frame.Get(1, 0); got == core.Black {
		t.Error("Expected pixel between floor and light to be lit")
	}
}

// newMirrorCamera puts the camera between two facing mirrors
func newMirrorCamera(t *testing.T, reflectAmount float64, maxDepth int) *Camera {
	t.Helper()
	c := newTestCamera(t)
	must(t, c.SetSize(1, 1))
	must(t, c.SetMaxDepth(maxDepth))
	c.SetLens(lens.NewOrthographicLens(1, 1, 1, 1))

	mirror := material.NewReflective(core.Black, reflectAmount)
	front := geometry.NewCircle(core.NewVec3(0, 0, 5), core.NewVec3(0, 10, 5), core.NewVec3(10, 0, 5), mirror, nil)
	back := geometry.NewCircle(core.NewVec3(0, 0, -5), core.NewVec3(10, 0, -5), core.NewVec3(0, 10, -5), mirror, nil)
	must(t, c.SetGeometry([]geometry.Shape{front, back}))
	return c
}

func TestRender_ReflectionLimits(t *testing.T) {
	tests := []struct {
		name               string
		reflectAmount      float64
		maxDepth           int
		expectedReflection int
	}{
		{"depth cap", 1, 8, 8},
		{"no reflection at depth zero", 1, 0, 0},
		{"weight cutoff before depth cap", 0.5, 20, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMirrorCamera(t, tt.reflectAmount, tt.maxDepth)
			frame, stats := c.Render()

			if stats.ReflectionRays != tt.expectedReflection {
				t.Errorf("Expected %d reflection rays, got %d", tt.expectedReflection, stats.ReflectionRays)
			}
			if stats.DepthLimitHits != 1 {
				t.Errorf("Expected 1 depth cutoff, got %d", stats.DepthLimitHits)
			}
			if got := frame.Get(0, 0); got != core.Black {
				t.Errorf("Expected black mirrors, got %v", got)
			}
		})
	}
}

func TestRender_ReflectionDisabled(t *testing.T) {
	c := newMirrorCamera(t, 1, 8)
	shading := DefaultShadingConfig()
	shading.Reflection = false
	must(t, c.SetShading(shading))

	_, stats := c.Render()
	if stats.ReflectionRays != 0 || stats.DepthLimitHits != 0 {
		t.Errorf("Expected no reflection work, got %+v", stats)
	}
}

func TestRender_ReflectionPicksUpBackground(t *testing.T) {
	// A half-silvered floor reflects half of the white sky
	c := newTestCamera(t)
	must(t, c.SetSize(1, 1))
	must(t, c.SetPosition(core.NewVec3(0, 10, 0)))
	must(t, c.SetOrientation(core.NewVec3(0, -1, 0), core.NewVec3(0, 0, 1)))
	c.SetLens(lens.NewOrthographicLens(1, 1, 1, 1))
	c.SetBackground(background.NewHorizon(core.White, core.Black))

	floor := geometry.NewCircle(core.Vec3{}, core.NewVec3(0, 0, 10), core.NewVec3(10, 0, 0),
		material.NewReflective(core.Black, 0.5), nil)
	must(t, c.SetGeometry([]geometry.Shape{floor}))

	frame, stats := c.Render()
	if got := frame.Get(0, 0); got != core.NewColor(127, 127, 127) {
		t.Errorf("Expected half the sky, got %v", got)
	}
	if stats.ReflectionRays != 1 {
		t.Errorf("Expected 1 reflection ray, got %d", stats.ReflectionRays)
	}
}

func TestRender_BackFacingMirror(t *testing.T) {
	// The disc's normal points away from the camera; the reflection must
	// leave from the near side and escape to the background
	c := newTestCamera(t)
	must(t, c.SetSize(1, 1))
	c.SetLens(lens.NewOrthographicLens(1, 1, 1, 1))
	c.SetBackground(background.NewFlat(core.Red))

	mirror := geometry.NewCircle(core.NewVec3(0, 0, 5), core.NewVec3(10, 0, 5), core.NewVec3(0, 10, 5),
		material.NewReflective(core.Black, 1), nil)
	must(t, c.SetGeometry([]geometry.Shape{mirror}))

	frame, stats := c.Render()
	if stats.ReflectionRays != 1 {
		t.Errorf("Expected 1 reflection ray, got %d", stats.ReflectionRays)
	}
	if stats.DepthLimitHits != 0 {
		t.Errorf("Expected no depth cutoffs, got %d", stats.DepthLimitHits)
	}
	if got := frame.Get(0, 0); got != core.Red {
		t.Errorf("Expected the reflected background, got %v", got)
	}
}

func newSampledCamera(t *testing.T, workers int) *Camera {
	t.Helper()
	cfg := DefaultCameraConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.TileSize = 16
	cfg.Samples = 4
	cfg.Blur = 0.05
	cfg.NumWorkers = workers

	c, err := NewCamera(cfg)
	must(t, err)
	must(t, c.SetPosition(core.NewVec3(0, 0, -4)))
	must(t, c.SetGeometry([]geometry.Shape{
		geometry.NewSphere(core.Vec3{}, 1, material.NewReflective(core.Orange, 0.3), nil),
	}))
	must(t, c.SetLights([]lights.Light{
		lights.NewAmbientLight(core.White, 0.2),
		lights.NewPointLight(core.White, core.NewVec3(-3, 3, -3), 1),
	}))
	c.SetBackground(background.NewGradient(core.Cyan, core.Gray))
	return c
}

func TestRender_MultiSampleDeterministic(t *testing.T) {
	single, stats := newSampledCamera(t, 1).Render()
	parallel, _ := newSampledCamera(t, 4).Render()

	if !bytes.Equal(single.Pix, parallel.Pix) {
		t.Error("Worker count changed the rendered image")
	}
	if stats.TotalSamples != 40*40*4 {
		t.Errorf("Expected %d samples, got %d", 40*40*4, stats.TotalSamples)
	}
	if stats.AverageSamples != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", stats.AverageSamples)
	}
}

func TestRender_NormalMappedSphere(t *testing.T) {
	tex, err := material.NewTexture(
		core.NewSolidBitmap(4, 4, core.Orange),
		material.WithNormalMap(core.NewSolidBitmap(4, 4, core.NewColor(200, 100, 128))),
	)
	must(t, err)

	c := newTestCamera(t)
	must(t, c.SetSize(8, 8))
	must(t, c.SetPosition(core.NewVec3(0, 0, -3)))
	must(t, c.SetGeometry([]geometry.Shape{
		geometry.NewSphere(core.Vec3{}, 1, material.NewMaterial(core.White), material.NewSphereMap(tex)),
	}))
	must(t, c.SetLights([]lights.Light{lights.NewAmbientLight(core.White, 1)}))
	c.SetRotationCache(core.NewDefaultRotationCache())

	frame, stats := c.Render()

	// Ambient light picks up the texture's diffuse color, not the material's
	if got := frame.Get(4, 4); got != core.Orange {
		t.Errorf("Expected texture color at the centre, got %v", got)
	}
	if stats.RotationCache.Hits == 0 || stats.RotationCache.Misses == 0 {
		t.Errorf("Expected normal mapping to use the rotation cache, got %+v", stats.RotationCache)
	}
}

func TestRender_Logging(t *testing.T) {
	logger := &recordingLogger{}
	c := newQuadrantCamera(t, material.NewMaterial(core.Red))
	c.SetLogger(logger)

	c.Render()

	if len(logger.lines) != 2 {
		t.Fatalf("Expected start and completion lines, got %q", logger.lines)
	}
	if !strings.HasPrefix(logger.lines[0], "Rendering 2x2") {
		t.Errorf("Unexpected start line %q", logger.lines[0])
	}
	if !strings.HasPrefix(logger.lines[1], "Render completed") {
		t.Errorf("Unexpected completion line %q", logger.lines[1])
	}
}

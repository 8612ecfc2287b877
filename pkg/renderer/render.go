package renderer

import (
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/background"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lens"
)

// view is the camera placement and sampling settings captured for one render
type view struct {
	lens     lens.Lens
	position core.Vec3
	rotation core.Rotation
	samples  int
	blur     float64
}

// Render draws the scene. It blocks until every pixel is done, leaves the
// camera unchanged and gives identical output for identical configuration.
func (c *Camera) Render() (*Frame, RenderStats) {
	start := time.Now()
	cfg := c.config

	l := c.lens
	if l == nil {
		l = lens.NewSimpleLens(cfg.Width, cfg.Height, 1, 1)
	}
	bg := c.background
	if bg == nil {
		bg = background.NewFlat(core.Black)
	}

	v := view{
		lens:     l,
		position: c.position,
		rotation: c.rotation,
		samples:  cfg.Samples,
		blur:     cfg.Blur,
	}
	s := &shader{
		shapes:     c.shapes,
		lights:     c.lights,
		background: bg,
		shading:    cfg.Shading,
		maxDepth:   cfg.MaxDepth,
		rotator:    c.cache,
	}

	frame := NewFrame(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)

	pool := NewWorkerPool(cfg.NumWorkers, func(task TileTask) TileResult {
		// Each tile writes only inside its own bounds
		return TileResult{Stats: v.renderTile(s, task.Tile, frame)}
	})

	c.logger.Printf("Rendering %dx%d, %d samples per pixel, %d tiles on %d workers...\n",
		cfg.Width, cfg.Height, cfg.Samples, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	results := pool.Wait()

	var stats RenderStats
	for _, result := range results {
		stats.Merge(result.Stats)
	}
	stats.finalize()
	stats.Duration = time.Since(start)
	stats.RotationCache = c.cache.Stats()

	c.logger.Printf("Render completed in %v: %d samples, %d shadow rays, %d reflection rays, %d depth cutoffs, rotation cache hit rate %.1f%%\n",
		stats.Duration, stats.TotalSamples, stats.ShadowRays, stats.ReflectionRays,
		stats.DepthLimitHits, stats.RotationCache.HitRate()*100)

	return frame, stats
}

// renderTile shades every pixel in tile into frame
func (v view) renderTile(s *shader, tile *Tile, frame *Frame) RenderStats {
	stats := RenderStats{TotalPixels: tile.Bounds.Dx() * tile.Bounds.Dy()}
	t := &tracer{shader: s, stats: &stats}

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			frame.Set(x, y, v.renderPixel(t, image.Pt(x, y), tile.Random))
		}
	}

	return stats
}

// renderPixel averages the samples taken through pixel p
func (v view) renderPixel(t *tracer, p image.Point, random *rand.Rand) core.Color {
	local := v.lens.PointToRay(p)
	ray := core.NewRay(
		v.position.Add(v.rotation.Apply(local.Origin)),
		v.rotation.Apply(local.Direction),
	)

	if v.samples == 1 {
		t.stats.TotalSamples++
		return t.shade(ray)
	}

	var r, g, b int
	for i := 0; i < v.samples; i++ {
		jitter := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		direction := ray.Direction.Add(jitter.Multiply(v.blur)).Normalize()
		if direction.IsNaN() {
			direction = ray.Direction
		}

		t.stats.TotalSamples++
		c := t.shade(core.Ray{Origin: ray.Origin, Direction: direction})
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}

	return core.NewColor(r/v.samples, g/v.samples, b/v.samples)
}

package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Primary rays cast
	AverageSamples float64 // Average samples per pixel
	ShadowRays     int     // Rays cast toward point and sun lights
	ReflectionRays int     // Mirror rays followed
	DepthLimitHits int     // Reflections dropped by the depth or weight cutoff

	Duration      time.Duration
	RotationCache core.RotationCacheStats // Cumulative for the camera's cache
}

// Merge adds the counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.ShadowRays += other.ShadowRays
	s.ReflectionRays += other.ReflectionRays
	s.DepthLimitHits += other.DepthLimitHits
}

// finalize calculates derived statistics after all tiles are merged
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

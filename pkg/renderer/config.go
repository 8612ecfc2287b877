package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Camera setters given a value they cannot render with
var ErrInvalidConfig = errors.New("invalid camera configuration")

const (
	// DefaultMaxDepth bounds the number of mirror bounces per primary ray
	DefaultMaxDepth = 8
	// DefaultTileSize is the edge length of a render tile in pixels
	DefaultTileSize = 32

	// minContribution is the smallest weight a reflected ray can carry and
	// still change an 8-bit channel
	minContribution = 1.0 / 255

	// surfaceEpsilon lifts secondary rays off the surface they start on
	surfaceEpsilon = 1e-9
)

// ShadingModel selects how a hit is turned into a color
type ShadingModel string

const (
	// ShadingPhong is ambient, Lambert, specular highlights and mirror reflection
	ShadingPhong ShadingModel = "phong"
	// ShadingCartoon thresholds the Lambert term into two bands
	ShadingCartoon ShadingModel = "cartoon"
	// ShadingFlat returns the material color with no lighting at all
	ShadingFlat ShadingModel = "flat"
)

// ShadingConfig selects the shading model and which Phong terms contribute.
// The toggles only affect ShadingPhong.
type ShadingConfig struct {
	Model      ShadingModel
	Normal     bool // Perturb normals using texture normal maps
	Diffuse    bool // Ambient and Lambert terms
	Specular   bool
	Reflection bool
}

// DefaultShadingConfig returns Phong shading with every term enabled
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		Model:      ShadingPhong,
		Normal:     true,
		Diffuse:    true,
		Specular:   true,
		Reflection: true,
	}
}

// Validate checks the shading model is known
func (s ShadingConfig) Validate() error {
	switch s.Model {
	case ShadingPhong, ShadingCartoon, ShadingFlat:
		return nil
	}
	return fmt.Errorf("%w: unknown shading model %q", ErrInvalidConfig, s.Model)
}

// ParseShadingModel converts a model name to a ShadingModel
func ParseShadingModel(name string) (ShadingModel, error) {
	model := ShadingModel(name)
	if err := (ShadingConfig{Model: model}).Validate(); err != nil {
		return "", err
	}
	return model, nil
}

// CameraConfig holds the scalar render settings of a Camera
type CameraConfig struct {
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	Samples    int     // Rays per pixel, at least 1
	Blur       float64 // Jitter applied to each extra sample's direction
	MaxDepth   int     // Maximum mirror bounces, 0 disables reflection
	TileSize   int     // Size of each render tile
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	Shading    ShadingConfig
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:      400,
		Height:     300,
		Samples:    1,
		Blur:       0,
		MaxDepth:   DefaultMaxDepth,
		TileSize:   DefaultTileSize,
		NumWorkers: 0,
		Shading:    DefaultShadingConfig(),
	}
}

// Validate reports the first setting a Camera would reject
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples %d must be at least 1", ErrInvalidConfig, c.Samples)
	}
	if !(c.Blur >= 0) {
		return fmt.Errorf("%w: blur %v must not be negative", ErrInvalidConfig, c.Blur)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.NumWorkers)
	}
	return c.Shading.Validate()
}

package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// LoadImage loads a PNG or JPEG image into a bitmap
func LoadImage(filename string) (*core.Bitmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return core.NewBitmap(img), nil
}

// TexturePaths names the image files making up a texture. Only Diffuse is required.
type TexturePaths struct {
	Diffuse    string
	Normal     string
	Specular   string
	Reflection string
}

// LoadTexture loads every image named in paths and builds a texture from them
func LoadTexture(paths TexturePaths) (*material.Texture, error) {
	if paths.Diffuse == "" {
		return nil, material.ErrMissingDiffuse
	}
	diffuse, err := LoadImage(paths.Diffuse)
	if err != nil {
		return nil, err
	}

	var opts []material.TextureOption
	maps := []struct {
		path   string
		option func(*core.Bitmap) material.TextureOption
	}{
		{paths.Normal, material.WithNormalMap},
		{paths.Specular, material.WithSpecularMap},
		{paths.Reflection, material.WithReflectionMap},
	}
	for _, m := range maps {
		if m.path == "" {
			continue
		}
		bmp, err := LoadImage(m.path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, m.option(bmp))
	}

	return material.NewTexture(diffuse, opts...)
}

// SavePNG encodes img to filename, creating parent directories as needed
func SavePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

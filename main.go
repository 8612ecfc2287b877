package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/lens"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Config holds the parsed command line
type Config struct {
	Scene   string
	Width   int // 0 keeps the scene's size
	Height  int
	Samples int
	Blur    float64
	Depth   int
	Lens    string
	Shading string
	Frame   float64
	Skybox  string
	Texture string
	Workers int
	Out     string // Output file, empty for output/<scene>/render_<timestamp>.png
}

func main() {
	// Parse command line flags
	var config Config
	flag.StringVar(&config.Scene, "scene", "example", "Scene type: 'example' or 'spheres'")
	flag.IntVar(&config.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&config.Samples, "samples", 1, "Rays per pixel")
	flag.Float64Var(&config.Blur, "blur", 0, "Direction jitter for extra samples")
	flag.IntVar(&config.Depth, "depth", renderer.DefaultMaxDepth, "Maximum reflection depth")
	flag.StringVar(&config.Lens, "lens", "simple", "Lens: 'simple', 'fisheye' or 'ortho'")
	flag.StringVar(&config.Shading, "shading", "phong", "Shading model: 'phong', 'cartoon' or 'flat'")
	flag.Float64Var(&config.Frame, "frame", 0, "Animation frame for animated scenes")
	flag.StringVar(&config.Skybox, "skybox", "", "Skybox image in a 4x3 cross layout")
	flag.StringVar(&config.Texture, "texture", "", "Diffuse texture for the ground")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Out, "out", "", "Output PNG path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Recursive Raytracer...")

	filename, err := run(config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Recursive Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// run renders the configured scene and writes it out, returning the file name
func run(config Config) (string, error) {
	selectedScene, err := createScene(config)
	if err != nil {
		return "", err
	}

	camera, err := createCamera(config, selectedScene)
	if err != nil {
		return "", err
	}
	camera.SetLogger(renderer.NewDefaultLogger())

	frame, stats := camera.Render()
	fmt.Printf("Samples per pixel: %.1f, average luminance %.3f\n",
		stats.AverageSamples, renderer.CalculateAverageLuminance(frame))

	filename := config.Out
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", config.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := loaders.SavePNG(filename, frame); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene builds the named scene, loading any skybox or texture images first
func createScene(config Config) (*scene.Scene, error) {
	opts := scene.Options{Frame: config.Frame}

	if config.Skybox != "" {
		skybox, err := loaders.LoadImage(config.Skybox)
		if err != nil {
			return nil, fmt.Errorf("loading skybox: %w", err)
		}
		opts.Skybox = skybox
	}
	if config.Texture != "" {
		texture, err := loaders.LoadTexture(loaders.TexturePaths{Diffuse: config.Texture})
		if err != nil {
			return nil, fmt.Errorf("loading texture: %w", err)
		}
		opts.Texture = texture
	}

	return scene.New(config.Scene, opts)
}

// createCamera applies the scene and the command line overrides to a new camera
func createCamera(config Config, s *scene.Scene) (*renderer.Camera, error) {
	cameraConfig := s.CameraConfig
	if config.Width > 0 {
		cameraConfig.Width = config.Width
	}
	if config.Height > 0 {
		cameraConfig.Height = config.Height
	}
	cameraConfig.Samples = config.Samples
	cameraConfig.Blur = config.Blur
	cameraConfig.MaxDepth = config.Depth
	cameraConfig.NumWorkers = config.Workers

	model, err := renderer.ParseShadingModel(config.Shading)
	if err != nil {
		return nil, err
	}
	cameraConfig.Shading.Model = model

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}
	if err := s.Configure(camera); err != nil {
		return nil, err
	}

	l, err := createLens(config.Lens, cameraConfig.Width, cameraConfig.Height)
	if err != nil {
		return nil, err
	}
	if l != nil {
		camera.SetLens(l)
	}
	return camera, nil
}

// createLens returns the lens to override the scene's with, or nil to keep it
func createLens(name string, width, height int) (lens.Lens, error) {
	switch name {
	case "simple", "":
		return nil, nil
	case "fisheye":
		return lens.NewFisheyeLens(width, height, 0.5), nil
	case "ortho":
		scale := 10.0 / float64(min(width, height))
		return lens.NewOrthographicLens(width, height, scale, scale), nil
	default:
		return nil, fmt.Errorf("%w: unknown lens %q", renderer.ErrInvalidConfig, name)
	}
}

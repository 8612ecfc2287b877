package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Frame is a rendered image: 3 bytes per pixel, row-major, origin at the top left.
// Frame implements image.Image so it can be handed straight to an encoder.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// Set writes the pixel at (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	i := (y*f.Width + x) * 3
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// Get reads the pixel at (x, y)
func (f *Frame) Get(x, y int) core.Color {
	i := (y*f.Width + x) * 3
	return core.Color{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	c := f.Get(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}

package core

import (
	"image"
	"image/color"
)

const (
	// ChannelMax is the brightest value a color channel can hold
	ChannelMax = 255
	// ChannelMin is the darkest value a color channel can hold
	ChannelMin = 0
)

// Color is an 8-bit-per-channel RGB color. All arithmetic saturates at
// ChannelMax and floors at ChannelMin.
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Gray    = Color{128, 128, 128}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Orange  = Color{255, 200, 0}
)

// NewColor creates a color from integer channels, clamping each one
func NewColor(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// Hex creates a color from a 0xRRGGBB value
func Hex(rgb uint32) Color {
	return Color{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb)}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return NewColor(
		int(c.R)+int(other.R),
		int(c.G)+int(other.G),
		int(c.B)+int(other.B),
	)
}

// Scale multiplies each channel by d, truncating toward zero
func (c Color) Scale(d float64) Color {
	return Color{
		scaleChannel(c.R, d),
		scaleChannel(c.G, d),
		scaleChannel(c.B, d),
	}
}

// Mul filters c by other, treating other's channels as fractions of ChannelMax
func (c Color) Mul(other Color) Color {
	return Color{
		scaleChannel(c.R, float64(other.R)/ChannelMax),
		scaleChannel(c.G, float64(other.G)/ChannelMax),
		scaleChannel(c.B, float64(other.B)/ChannelMax),
	}
}

// Darker scales the color by 0.7
func (c Color) Darker() Color {
	return c.Scale(0.7)
}

// Mean returns the average channel intensity in [0, 1]
func (c Color) Mean() float64 {
	return float64(int(c.R)+int(c.G)+int(c.B)) / (ChannelMax * 3.0)
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func scaleChannel(v uint8, d float64) uint8 {
	f := float64(v) * d
	// NaN and negative values floor at zero
	if !(f > ChannelMin) {
		return ChannelMin
	}
	if f >= ChannelMax {
		return ChannelMax
	}
	return uint8(f)
}

func clampChannel(v int) uint8 {
	if v > ChannelMax {
		return ChannelMax
	}
	if v < ChannelMin {
		return ChannelMin
	}
	return uint8(v)
}

// Bitmap is a pre-decoded image stored row-major with the origin at the top left
type Bitmap struct {
	Width  int
	Height int
	Pix    []Color // Pix[y*Width + x]
}

// NewBitmap converts any image to a Bitmap
func NewBitmap(img image.Image) *Bitmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels
			pix[y*width+x] = Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
	}

	return &Bitmap{Width: width, Height: height, Pix: pix}
}

// NewSolidBitmap creates a bitmap filled with one color
func NewSolidBitmap(width, height int, c Color) *Bitmap {
	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = c
	}
	return &Bitmap{Width: width, Height: height, Pix: pix}
}

// At returns the pixel at (x, y). Coordinates must be in range.
func (b *Bitmap) At(x, y int) Color {
	return b.Pix[y*b.Width+x]
}

// Set writes the pixel at (x, y)
func (b *Bitmap) Set(x, y int, c Color) {
	b.Pix[y*b.Width+x] = c
}

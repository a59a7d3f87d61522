package image24

import (
	"image"
	"image/color"
)

// RGB is an opaque 24-bit color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the RGB color to standard alpha-premultiplied RGBA.
// Each 8-bit channel is scaled to 16-bit; alpha is always 0xFFFF.
func (c RGB) RGBA() (r, g, b, a uint32) {
	// 0xFF * 0x101 = 0xFFFF, 0x80 * 0x101 = 0x8080, etc.
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB converts any color.Color to RGB by dropping alpha from its
// non-premultiplied form.
func toRGB(c color.Color) color.Color {
	if v, ok := c.(RGB); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBModel converts colors to RGB.
var RGBModel = color.ModelFunc(toRGB)

// Interleaved is a 24-bit RGB image where each pixel occupies 3 consecutive
// bytes in R, G, B order.
type Interleaved struct {
	Pix    []byte          // Pixel data (3 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewInterleaved creates a new Interleaved image with the specified bounds.
// All pixels start black.
func NewInterleaved(r image.Rectangle) *Interleaved {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Interleaved{Rect: r}
	}

	stride := 3 * w
	return &Interleaved{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Interleaved) ColorModel() color.Model {
	return RGBModel
}

// Bounds returns the image bounds.
func (p *Interleaved) Bounds() image.Rectangle {
	return p.Rect
}

// Opaque reports whether the image is fully opaque, which is always the case.
// PNG encoders use it to pick the 3-channel truecolor format.
func (p *Interleaved) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Interleaved) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the RGB color of the pixel at (x, y).
// Points outside the bounds read as black.
func (p *Interleaved) RGBAt(x, y int) RGB {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return RGB{R: s[0], G: s[1], B: s[2]}
}

// Set sets the color of the pixel at (x, y).
func (p *Interleaved) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGB(x, y, RGBModel.Convert(c).(RGB))
}

// SetRGB sets the RGB color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
// Points outside the bounds are ignored.
func (p *Interleaved) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *Interleaved) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

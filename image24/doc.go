// Package image24 provides a 24-bit RGB image format used as the merge output buffer.
//
// Each pixel is 3 bytes: red, green, blue, in that order. There is no alpha
// channel; the image always reports itself as opaque, so PNG encoders write it
// as 8-bit truecolor.
//
// Memory layout example for a 2x2 image:
//
//	Pixels: (0,0)       (1,0)       (0,1)       (1,1)
//	Values: 10,20,30    200,100,50  200,100,50  10,20,30
//	Bytes:  0A 14 1E    C8 64 32    C8 64 32    0A 14 1E
//	        |--- row 0, Stride 6 ---|--- row 1 ----------|
//
// This package provides:
//
// - RGB: A color type with three 8-bit channels
// - RGBModel: A color model for converting standard Go colors to RGB
// - Interleaved: An image.Image (and draw.Image) backed by interleaved RGB bytes
//
// Example usage:
//
//	// Create a 4x4 image, all black
//	img := image24.NewInterleaved(image.Rect(0, 0, 4, 4))
//
//	// Set a pixel
//	img.SetRGB(1, 2, image24.RGB{R: 10, G: 20, B: 30})
//
//	// Get a pixel
//	c := img.RGBAt(1, 2)
//	println(c.G)  // Output: 20
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image24.RGB{R: 255}), image.Point{}, draw.Src)
package image24

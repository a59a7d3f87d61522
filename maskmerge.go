// Package maskmerge composites two equally sized images using a mask.
//
// See doc.go for details.
package maskmerge

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/maskmerge/image24"
)

// ErrDimensionMismatch is matched by every *DimensionError.
var ErrDimensionMismatch = errors.New("maskmerge: image dimensions must match exactly")

// DimensionError reports that the mask and the two sources differ in size.
type DimensionError struct {
	Mask image.Point // Mask width and height
	A    image.Point // Image A width and height
	B    image.Point // Image B width and height
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("maskmerge: image dimensions must match exactly (mask %dx%d, image A %dx%d, image B %dx%d)",
		e.Mask.X, e.Mask.Y, e.A.X, e.A.Y, e.B.X, e.B.Y)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Validate checks that a and b have exactly the mask's width and height.
func Validate(mask, a, b image.Image) error {
	ms := mask.Bounds().Size()
	as := a.Bounds().Size()
	bs := b.Bounds().Size()
	if as != ms || bs != ms {
		return &DimensionError{Mask: ms, A: as, B: bs}
	}
	return nil
}

// Merge builds a new image the size of mask. Each pixel is taken from a when
// the mask's first channel at that point is zero, and from b otherwise.
//
// The output bounds start at (0, 0). Inputs are addressed relative to their
// own Bounds().Min, so sub-images work as expected. Nothing is allocated when
// validation fails.
func Merge(mask, a, b image.Image) (*image24.Interleaved, error) {
	if err := Validate(mask, a, b); err != nil {
		return nil, err
	}

	mMin := mask.Bounds().Min
	aMin := a.Bounds().Min
	bMin := b.Bounds().Min
	size := mask.Bounds().Size()

	out := image24.NewInterleaved(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			var c color.Color
			if FirstChannelZero(mask, mMin.X+x, mMin.Y+y) {
				c = a.At(aMin.X+x, aMin.Y+y)
			} else {
				c = b.At(bMin.X+x, bMin.Y+y)
			}
			out.SetRGB(x, y, image24.RGBModel.Convert(c).(image24.RGB))
		}
	}

	return out, nil
}

// FirstChannelZero reports whether the first channel of img at (x, y) is
// zero. The channel is read at the image's native precision where the type is
// known; other images are converted to non-premultiplied RGB and red is used.
func FirstChannelZero(img image.Image, x, y int) bool {
	switch m := img.(type) {
	case *image.Gray:
		return m.GrayAt(x, y).Y == 0
	case *image.Gray16:
		return m.Gray16At(x, y).Y == 0
	case *image.NRGBA:
		return m.NRGBAAt(x, y).R == 0
	case *image.NRGBA64:
		return m.NRGBA64At(x, y).R == 0
	case *image.RGBA:
		return m.RGBAAt(x, y).R == 0
	case *image.RGBA64:
		return m.RGBA64At(x, y).R == 0
	case *image.CMYK:
		return m.CMYKAt(x, y).C == 0
	case *image.Paletted:
		i := int(m.ColorIndexAt(x, y))
		if i >= len(m.Palette) {
			return true
		}
		return red(m.Palette[i]) == 0
	case *image24.Interleaved:
		return m.RGBAt(x, y).R == 0
	}
	return red(img.At(x, y)) == 0
}

// red returns the 16-bit non-premultiplied red component of c.
func red(c color.Color) uint16 {
	return color.NRGBA64Model.Convert(c).(color.NRGBA64).R
}

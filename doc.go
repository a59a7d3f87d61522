// Package maskmerge composites two equally sized images using a mask.
//
// For every pixel, the mask's first channel decides which source is used:
// zero picks image A, anything else picks image B. The result is a 24-bit RGB
// image (see package image24) of the same size as the inputs, saved as PNG.
//
// # Basic Usage
//
// Merging images that are already in memory:
//
//	out, err := maskmerge.Merge(mask, imgA, imgB)
//	if err != nil {
//		// *maskmerge.DimensionError if the sizes differ
//	}
//	err = maskmerge.Save("out.png", out)
//
// Merging files end to end, the way the merge command does:
//
//	report, err := maskmerge.MergeFiles("mask.png", "a.png", "b.png", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%dx%d written to %s\n", report.Width, report.Height, report.Output)
//
// # The First Channel
//
// The mask is read at its native precision. For gray images the first
// channel is Y, for RGB(A) images it is red, for CMYK images it is cyan and
// for paletted images it is the red component of the palette entry. Any other
// image type, such as the YCbCr images produced by the JPEG decoder, is
// converted to RGB first and its red component is used.
//
// The three images may have different channel layouts; only their width and
// height must match.
//
// # Source Pixels
//
// Source pixels are copied as non-premultiplied red, green and blue. Alpha is
// dropped.
//
// # Errors
//
// Every failure is one of:
//
//	*DimensionError  the three images do not share width and height
//	*FileAccessError a file could not be opened, created or renamed
//	*DecodeError     an input file is not a supported image
//	*EncodeError     the output could not be encoded as PNG
//
// DimensionError also matches ErrDimensionMismatch with errors.Is.
//
// # Supported Formats
//
// Inputs may be PNG, JPEG, GIF, BMP, TIFF or WebP. Output is always PNG.
// Saving goes through a temporary file in the destination directory, so the
// output path either holds a complete image or is left untouched.
package maskmerge

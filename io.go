package maskmerge

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// BMP and TIFF decoders are registered by imaging.
	_ "golang.org/x/image/webp"
)

// DefaultOutput is the output path used when Opts.Output is empty.
const DefaultOutput = "out.png"

// FileAccessError reports a file that could not be opened, created or moved.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("maskmerge: cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DecodeError reports an input file that is not a supported image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("maskmerge: cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an image that could not be encoded as PNG.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("maskmerge: cannot encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Opts is the configuration for MergeFiles.
type Opts struct {
	// Output path (default: DefaultOutput, relative to the working directory)
	Output string

	// Called with the validated dimensions before any pixel work (optional)
	OnLoaded func(width, height int)
}

// Report describes a completed merge.
type Report struct {
	Width  int
	Height int
	Output string
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Save encodes img as PNG and writes it to path, replacing any existing file.
//
// The image is written to a temporary file in the same directory and renamed
// into place, so path is never left holding a partial image.
func Save(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileAccessError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.PNG); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return &FileAccessError{Path: tmp.Name(), Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &FileAccessError{Path: tmp.Name(), Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &FileAccessError{Path: path, Err: err}
	}
	return nil
}

// MergeFiles loads the three images, validates their dimensions, merges them
// and saves the result as PNG.
//
// opts can be nil to use defaults. No output is written unless every step
// before saving succeeds.
func MergeFiles(maskPath, aPath, bPath string, opts *Opts) (*Report, error) {
	if opts == nil {
		opts = &Opts{}
	}
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	mask, err := Load(maskPath)
	if err != nil {
		return nil, err
	}
	a, err := Load(aPath)
	if err != nil {
		return nil, err
	}
	b, err := Load(bPath)
	if err != nil {
		return nil, err
	}

	if err := Validate(mask, a, b); err != nil {
		return nil, err
	}
	size := mask.Bounds().Size()
	if opts.OnLoaded != nil {
		opts.OnLoaded(size.X, size.Y)
	}

	out, err := Merge(mask, a, b)
	if err != nil {
		return nil, err
	}
	if err := Save(output, out); err != nil {
		return nil, err
	}

	return &Report{Width: size.X, Height: size.Y, Output: output}, nil
}

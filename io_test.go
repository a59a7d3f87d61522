package maskmerge

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// writeFixtures saves the 2x2 checkerboard mask and two solid sources into
// dir, using a different container format for each.
func writeFixtures(t *testing.T, dir string) (maskPath, aPath, bPath string) {
	t.Helper()

	maskPath = filepath.Join(dir, "mask.png")
	require.NoError(t, imaging.Save(grayMask([][]uint8{{0, 1}, {1, 0}}), maskPath))

	aPath = filepath.Join(dir, "a.bmp")
	f, err := os.Create(aPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, imaging.New(2, 2, colorA)))
	require.NoError(t, f.Close())

	bPath = filepath.Join(dir, "b.tif")
	require.NoError(t, imaging.Save(imaging.New(2, 2, colorB), bPath))

	return maskPath, aPath, bPath
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	maskPath, aPath, bPath := writeFixtures(t, dir)

	for _, path := range []string{maskPath, aPath, bPath} {
		img, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds(), path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")

	img, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, img)

	var fileErr *FileAccessError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, path, fileErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := Load(path)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, path, decErr.Path)
	assert.True(t, errors.Is(err, image.ErrFormat))
}

func TestLoad_WebPRegistered(t *testing.T) {
	// A truncated WebP header reaches the WebP decoder instead of failing
	// format detection.
	path := filepath.Join(t.TempDir(), "broken.webp")
	require.NoError(t, os.WriteFile(path, []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), 0o644))

	_, err := Load(path)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.False(t, errors.Is(err, image.ErrFormat))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	out, err := Merge(grayMask([][]uint8{{0, 1}, {1, 0}}), solid(2, 2, colorA), solid(2, 2, colorB))
	require.NoError(t, err)
	require.NoError(t, Save(path, out))

	img, err := Load(path)
	require.NoError(t, err)
	assertPixels(t, img, [][]color.NRGBA{
		{colorA, colorB},
		{colorB, colorA},
	})

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())
	assertOnlyFiles(t, dir, "out.png")
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Save(path, solid(3, 1, colorB)))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 1), img.Bounds())
}

func TestSave_EncodeFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	// PNG cannot encode an empty image.
	err := Save(path, image.NewRGBA(image.Rect(0, 0, 0, 0)))
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assertOnlyFiles(t, dir)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	err := Save(path, solid(1, 1, colorA))
	var fileErr *FileAccessError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, path, fileErr.Path)
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	maskPath, aPath, bPath := writeFixtures(t, dir)
	output := filepath.Join(dir, "merged.png")

	var loadedW, loadedH int
	report, err := MergeFiles(maskPath, aPath, bPath, &Opts{
		Output: output,
		OnLoaded: func(w, h int) {
			loadedW, loadedH = w, h
		},
	})
	require.NoError(t, err)
	assert.Equal(t, &Report{Width: 2, Height: 2, Output: output}, report)
	assert.Equal(t, 2, loadedW)
	assert.Equal(t, 2, loadedH)

	img, err := Load(output)
	require.NoError(t, err)
	assertPixels(t, img, [][]color.NRGBA{
		{colorA, colorB},
		{colorB, colorA},
	})
}

func TestMergeFiles_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	maskPath, aPath, bPath := writeFixtures(t, dir)
	t.Chdir(dir)

	report, err := MergeFiles(maskPath, aPath, bPath, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, report.Output)
	assert.FileExists(t, filepath.Join(dir, DefaultOutput))
}

func TestMergeFiles_Idempotent(t *testing.T) {
	dir := t.TempDir()
	maskPath, aPath, bPath := writeFixtures(t, dir)
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")

	_, err := MergeFiles(maskPath, aPath, bPath, &Opts{Output: first})
	require.NoError(t, err)
	_, err = MergeFiles(maskPath, aPath, bPath, &Opts{Output: second})
	require.NoError(t, err)

	want, err := os.ReadFile(first)
	require.NoError(t, err)
	got, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMergeFiles_DimensionMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	maskPath := filepath.Join(dir, "mask.png")
	aPath := filepath.Join(dir, "a.png")
	bPath := filepath.Join(dir, "b.png")
	require.NoError(t, imaging.Save(image.NewGray(image.Rect(0, 0, 4, 4)), maskPath))
	require.NoError(t, imaging.Save(imaging.New(4, 4, colorA), aPath))
	require.NoError(t, imaging.Save(imaging.New(3, 4, colorB), bPath))
	output := filepath.Join(dir, "out.png")

	called := false
	_, err := MergeFiles(maskPath, aPath, bPath, &Opts{
		Output:   output,
		OnLoaded: func(int, int) { called = true },
	})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.False(t, called)
	assert.NoFileExists(t, output)
}

func TestMergeFiles_MissingSourceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	maskPath, aPath, _ := writeFixtures(t, dir)
	output := filepath.Join(dir, "out.png")

	_, err := MergeFiles(maskPath, aPath, filepath.Join(dir, "absent.png"), &Opts{Output: output})
	var fileErr *FileAccessError
	require.ErrorAs(t, err, &fileErr)
	assert.NoFileExists(t, output)
}

func assertPixels(t *testing.T, img image.Image, want [][]color.NRGBA) {
	t.Helper()
	b := img.Bounds()
	require.Equal(t, len(want), b.Dy())
	for y, row := range want {
		require.Equal(t, len(row), b.Dx())
		for x, c := range row {
			got := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			assert.Equal(t, c, got, "pixel (%d, %d)", x, y)
		}
	}
}

func assertOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, names, got)
}

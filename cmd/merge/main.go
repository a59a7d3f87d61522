// Command merge composites two images using a mask.
//
// Usage:
//
//	merge <mask> <img1> <img2>
//
// For every pixel, img1 is used where the mask's first channel is zero and
// img2 everywhere else. All three images must have the same width and height.
// The result is written to out.png in the current directory, replacing any
// existing file.
//
// Exit codes:
//
//	0  success (or --help)
//	1  wrong number of arguments
//	2  image dimensions differ
//	3  a file could not be read or written
//	4  an image could not be decoded or encoded
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flavioheleno/maskmerge"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
	exitIO         = 3
	exitCodec      = 4
)

const usage = "Usage: merge <mask> <img1> <img2>"

var errUsage = errors.New("merge: expected exactly 3 arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(maskmerge.DefaultOutput)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitCode(cmd.Execute(), stdout, stderr)
}

func newRootCmd(output string) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <mask> <img1> <img2>",
		Short: "Merge two images using a mask",
		Long: "Merge two images of equal size using a mask.\n\n" +
			"Each output pixel comes from img1 where the mask's first channel is zero,\n" +
			"and from img2 otherwise. The result is written to " + output + ".",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			_, err := maskmerge.MergeFiles(args[0], args[1], args[2], &maskmerge.Opts{
				Output: output,
				OnLoaded: func(w, h int) {
					fmt.Fprintf(stdout, "Loaded images with dimension: %d x %d\n", w, h)
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Finished.")
			return nil
		},
	}
}

// exitCode prints the diagnostic for err and maps it to an exit code.
func exitCode(err error, stdout, stderr io.Writer) int {
	var (
		dimErr  *maskmerge.DimensionError
		fileErr *maskmerge.FileAccessError
		decErr  *maskmerge.DecodeError
		encErr  *maskmerge.EncodeError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stdout, usage)
		return exitUsage
	case errors.As(err, &dimErr):
		fmt.Fprintln(stdout, "All image dimensions must match exactly")
		fmt.Fprintf(stdout, "  mask: %d x %d, img1: %d x %d, img2: %d x %d\n",
			dimErr.Mask.X, dimErr.Mask.Y, dimErr.A.X, dimErr.A.Y, dimErr.B.X, dimErr.B.Y)
		return exitValidation
	case errors.As(err, &fileErr):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitIO
	case errors.As(err, &decErr), errors.As(err, &encErr):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCodec
	}

	// Anything else comes from cobra's own argument parsing, e.g. an unknown flag.
	fmt.Fprintf(stderr, "error: %v\n", err)
	fmt.Fprintln(stdout, usage)
	return exitUsage
}

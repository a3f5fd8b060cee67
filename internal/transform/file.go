// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File transforms the Markdown file at inputPath and writes the result to
// outputPath, creating or truncating it. Output written before a failure is
// left in place.
func File(inputPath, outputPath string, opts Options) (Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening input %s: %w", inputPath, err)
	}
	defer in.Close()

	if err := checkDistinct(in, outputPath); err != nil {
		return Result{}, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("creating output %s: %w", outputPath, err)
	}

	bw := bufio.NewWriter(out)
	result, err := Transform(in, bw, opts)
	if err != nil {
		out.Close()
		return result, err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return result, fmt.Errorf("writing output %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return result, fmt.Errorf("closing output %s: %w", outputPath, err)
	}
	return result, nil
}

// checkDistinct fails when outputPath names the already open input file,
// which os.Create would truncate before it is read.
func checkDistinct(in *os.File, outputPath string) error {
	outInfo, err := os.Stat(outputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output %s: %w", outputPath, err)
	}
	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("checking input %s: %w", in.Name(), err)
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("input %s and output %s are the same file", in.Name(), outputPath)
	}
	return nil
}

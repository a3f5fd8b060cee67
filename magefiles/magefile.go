//go:build mage

// Package main contains Mage build targets for doxme developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "doxme"
	cmdPkg  = "./cmd/doxme"
)

// Build compiles the CLI binary into bin/. The version printed by
// "doxme version" comes from DOXME_VERSION, falling back to "dev".
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("DOXME_VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit and script tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Readme transforms the README named by DOXME_SRC (default README.md) into
// the directory named by DOXME_DEST (default build/doc), ready for doxygen.
func Readme() error {
	mg.Deps(Build)

	src := os.Getenv("DOXME_SRC")
	if src == "" {
		src = "README.md"
	}
	dest := os.Getenv("DOXME_DEST")
	if dest == "" {
		dest = filepath.Join("build", "doc")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", src, err)
	}
	bin, err := filepath.Abs(filepath.Join(binDir, binName))
	if err != nil {
		return fmt.Errorf("resolving %s: %w", binName, err)
	}
	out := filepath.Join(dest, "README.md")
	if err := sh.RunV(bin, "-o", out, absSrc); err != nil {
		return fmt.Errorf("transforming %s: %w", src, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

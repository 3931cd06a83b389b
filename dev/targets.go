//go:build targ

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,         // clean up the module dependencies
		Generate,     // regenerate call-site shims
		Test,         // does our code work?
		ReorderDecls, // linter will yell about declaration order if not correct
		Lint,
	)
}

// Generate regenerates the shims in the UAT packages.
func Generate() error {
	fmt.Println("Generating shims...")

	return sh.Run("go", "generate", "./UAT/...")
}

// Lint lints the code.
func Lint() error {
	fmt.Println("Linting...")

	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs mutation testing.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run(
		"go", "test",
		"-tags=mutation",
		"-timeout=30m",
		"-run=TestMutation",
		".",
	)
}

// ReorderDecls reorders declarations in every non-generated source file,
// showing a diff for each file it rewrites.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := goSourceFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			return fmt.Errorf("failed to reorder %s: %w", file, err)
		}

		if reordered == string(content) {
			continue
		}

		diff := textdiff.Unified(file+" (current)", file+" (reordered)", string(content), reordered)
		if diff != "" {
			fmt.Printf("\n%s\n", diff)
		}

		err = os.WriteFile(file, []byte(reordered), 0o644)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}
	}

	return nil
}

// Test runs the unit tests with race detection and coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	return sh.Run(
		"go", "test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-cover",
		"./...",
	)
}

// TestForFail runs the unit tests just to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for fail/pass...")

	return sh.Run(
		"go", "test",
		"-timeout=2m",
		"-failfast",
		"-shuffle=on",
		"./...",
	)
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")

	return sh.Run("go", "mod", "tidy")
}

// goSourceFiles lists the module's checked-in Go files, skipping generated
// shims and anything under the examples mirror.
func goSourceFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if filepath.Ext(path) != ".go" {
			return nil
		}

		if strings.HasSuffix(path, "_gen.go") || strings.Contains(path, "magefiles") {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source tree: %w", err)
	}

	return files, nil
}

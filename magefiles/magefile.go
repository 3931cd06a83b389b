//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/magefile/mage/target"
)

// better glob expansion
// https://stackoverflow.com/a/26809999
func globs(dir string, ext []string) ([]string, error) {
	files := []string{}
	err := filepath.Walk(dir, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("unable to find all glob matches: %w", err)
		}

		for _, each := range ext {
			if filepath.Ext(path) == each {
				files = append(files, path)
				return nil
			}
		}

		return nil
	})

	return files, err
}

// Watch, and re-run Check whenever the files change.
func Watch() error {
	fmt.Println("Watching...")

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to monitor effectively due to error getting current working directory: %w", err)
	}

	var lastFinishedTime time.Time // never

	checkFunc := func(c context.Context) {
		err := Check(c)
		if err != nil {
			fmt.Printf("continuing to watch after check failure: \n  %s\n", err)
		} else {
			fmt.Println("continuing to watch after all checks passed!")
		}

		lastFinishedTime = time.Now()
	}

	ctx := context.Background()

	checkFunc(ctx)

	for {
		// don't run more than 1x/sec
		time.Sleep(time.Second)

		paths, err := globs(dir, []string{".go", ".toml"})
		if err != nil {
			return fmt.Errorf("unable to monitor effectively due to error resolving globs: %w", err)
		}

		changeDetected, err := target.PathNewer(lastFinishedTime, paths...)
		if err != nil {
			return fmt.Errorf("unable to monitor effectively due to error checking for path updates: %w", err)
		}

		if changeDetected {
			fmt.Println("Change detected...")
			checkFunc(ctx)
		}
	}
}

// Run all checks on the code.
func Check(c context.Context) error {
	fmt.Println("Checking...")

	for _, cmd := range []func(context.Context) error{
		Tidy,     // clean up the module dependencies
		Generate, // regenerate call-site shims
		Test,     // verify the stuff you explicitly care about works
		Lint,     // make it follow the standards you care about
	} {
		err := cmd(c)
		if err != nil {
			return fmt.Errorf("unable to finish checking: %w", err)
		}
	}

	return nil
}

// Run all checks on the code for determining whether any fail.
func CheckForFail(c context.Context) error {
	fmt.Println("Checking...")

	for _, cmd := range []func(context.Context) error{LintForFail, TestForFail} {
		err := cmd(c)
		if err != nil {
			return fmt.Errorf("unable to finish checking: %w", err)
		}
	}

	return nil
}

// Generate regenerates the shims in the UAT packages.
func Generate(c context.Context) error {
	fmt.Println("Generating shims...")
	return run(c, "go", "generate", "./UAT/...")
}

// Lint lints the code.
func Lint(c context.Context) error {
	fmt.Println("Linting...")
	return run(c, "golangci-lint", "run", "./...")
}

// LintForFail lints the code just to find out whether it fails.
func LintForFail(c context.Context) error {
	fmt.Println("Linting for fail/pass...")

	return run(c,
		"golangci-lint", "run",
		"--fix=false",
		"--max-issues-per-linter=1",
		"--max-same-issues=1",
		"./...",
	)
}

// Test runs the unit tests with race detection and coverage.
func Test(c context.Context) error {
	fmt.Println("Running unit tests...")

	return run(c,
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
func TestForFail(c context.Context) error {
	fmt.Println("Running unit tests for fail/pass...")

	return run(c,
		"go", "test",
		"-timeout=2m",
		"-failfast",
		"-shuffle=on",
		"./...",
	)
}

// Tidy tidies up go.mod.
func Tidy(c context.Context) error {
	fmt.Println("Tidying go.mod...")
	return run(c, "go", "mod", "tidy")
}

func run(c context.Context, command string, arg ...string) error {
	cmd := exec.CommandContext(c, command, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// mockfn/shimgen is a tool to generate mockable call-site shims for package-level
// functions. To use it, install it with `go install github.com/toejough/mockfn/shimgen@latest`
// and in the package owning the function, add a `//go:generate shimgen <function> --namespace <ns>`
// comment. The tool finds the function's declaration, and writes an exported,
// identically-typed wrapper in <function>_shim_gen.go that routes every call
// through mockfn.Dispatch under the function's canonical identity. Enabling a
// mock for that identity then redirects callers of the wrapper; with no mock
// enabled, the wrapper calls the original function.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toejough/mockfn/shimgen/run"
)

// main is the entry point of the shimgen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// Glob returns the names of all files matching pattern.
func (fs *realFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob failed for pattern %s: %w", pattern, err)
	}

	return matches, nil
}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

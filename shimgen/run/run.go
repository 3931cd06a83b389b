// Package run implements the main logic for the shimgen tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Interfaces - Public

// FileSystem interface for mocking.
type FileSystem interface {
	Glob(pattern string) ([]string, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	function  string // positional: name of the original function to shim
	namespace string // --namespace: mock namespace for the canonical identity
	name      string // --name: name for the generated wrapper (defaults to exported function name)
	dir       string // --dir: package directory to scan (defaults to ".")
}

// shimInfo holds everything gathered for generation.
type shimInfo struct {
	pkgName     string
	wrapperName string
	decl        *dst.FuncDecl
	args        cliArgs
}

// Functions - Public

// Run executes the shimgen tool logic. It takes command-line arguments, an
// environment variable getter, a FileSystem for file operations, and a writer
// for progress output. On success it writes <function>_shim_gen.go into the
// package directory: an exported wrapper with the original function's
// signature that routes every call through mockfn.Dispatch.
func Run(args []string, _ func(string) string, fileSys FileSystem, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	pkgName, decl, err := findFunction(parsed, fileSys)
	if err != nil {
		return err
	}

	err = validateFunction(decl)
	if err != nil {
		return err
	}

	info := shimInfo{
		pkgName:     pkgName,
		wrapperName: wrapperName(parsed),
		decl:        decl,
		args:        parsed,
	}

	if info.wrapperName == parsed.function {
		return fmt.Errorf("%w: %q is already exported; pass --name to pick a wrapper name",
			errBadWrapperName, parsed.function)
	}

	code, err := generateShimCode(info)
	if err != nil {
		return err
	}

	outPath := filepath.Join(parsed.dir, parsed.function+"_shim_gen.go")

	err = fileSys.WriteFile(outPath, []byte(code), 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s\n", outPath)

	return nil
}

// Functions - Private

// findFunction scans the package directory for the declaration of the
// original function, returning the package name alongside it. Test files and
// previously generated files are skipped.
func findFunction(args cliArgs, fileSys FileSystem) (string, *dst.FuncDecl, error) {
	paths, err := fileSys.Glob(filepath.Join(args.dir, "*.go"))
	if err != nil {
		return "", nil, err
	}

	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") || strings.HasSuffix(path, "_gen.go") {
			continue
		}

		src, err := fileSys.ReadFile(path)
		if err != nil {
			return "", nil, err
		}

		file, err := decorator.Parse(src)
		if err != nil {
			return "", nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*dst.FuncDecl)
			if !ok || funcDecl.Recv != nil {
				continue
			}

			if funcDecl.Name.Name == args.function {
				return file.Name.Name, funcDecl, nil
			}
		}
	}

	return "", nil, fmt.Errorf("%w: no function %q in %s", errFunctionNotFound, args.function, args.dir)
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	parsed := cliArgs{dir: "."} //nolint:exhaustruct // remaining fields are filled from flags

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	for i := 0; i < len(cmdArgs); i++ {
		arg := cmdArgs[i]

		switch {
		case arg == "--namespace" || arg == "--name" || arg == "--dir":
			if i+1 >= len(cmdArgs) {
				return cliArgs{}, fmt.Errorf("%w: %s requires a value", errBadArgs, arg)
			}

			i++

			switch arg {
			case "--namespace":
				parsed.namespace = cmdArgs[i]
			case "--name":
				parsed.name = cmdArgs[i]
			case "--dir":
				parsed.dir = cmdArgs[i]
			}
		case strings.HasPrefix(arg, "--"):
			return cliArgs{}, fmt.Errorf("%w: unknown flag %s", errBadArgs, arg)
		case parsed.function != "":
			return cliArgs{}, fmt.Errorf("%w: unexpected extra positional %s", errBadArgs, arg)
		default:
			parsed.function = arg
		}
	}

	if parsed.function == "" {
		return cliArgs{}, fmt.Errorf("%w: the function name is required", errBadArgs)
	}

	if parsed.namespace == "" {
		return cliArgs{}, fmt.Errorf("%w: --namespace is required", errBadArgs)
	}

	return parsed, nil
}

// validateFunction rejects shapes the generated shim cannot express: generic
// functions, variadic parameters, and multiple results.
func validateFunction(decl *dst.FuncDecl) error {
	if decl.Type.TypeParams != nil && len(decl.Type.TypeParams.List) > 0 {
		return fmt.Errorf("%w: %s is generic", errUnsupportedShape, decl.Name.Name)
	}

	if params := decl.Type.Params; params != nil {
		for _, field := range params.List {
			if _, ok := field.Type.(*dst.Ellipsis); ok {
				return fmt.Errorf("%w: %s is variadic", errUnsupportedShape, decl.Name.Name)
			}
		}
	}

	if results := decl.Type.Results; results != nil {
		count := 0
		for _, field := range results.List {
			names := len(field.Names)
			if names == 0 {
				names = 1
			}

			count += names
		}

		if count > 1 {
			return fmt.Errorf("%w: %s has %d results; the dispatch hook carries one value",
				errUnsupportedShape, decl.Name.Name, count)
		}
	}

	return nil
}

// wrapperName picks the generated wrapper's name: the --name flag when
// given, otherwise the original name with its first letter upper-cased.
func wrapperName(args cliArgs) string {
	if args.name != "" {
		return args.name
	}

	return strings.ToUpper(args.function[:1]) + args.function[1:]
}

// unexported variables.
var (
	errBadArgs          = errors.New("bad arguments")
	errBadWrapperName   = errors.New("bad wrapper name")
	errFunctionNotFound = errors.New("function not found")
	errUnsupportedShape = errors.New("unsupported function shape")
)

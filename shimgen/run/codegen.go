package run

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
	"github.com/toejough/mockfn"
)

// generateShimCode renders the generated file: package clause, mockfn
// import, and the wrapper function routing through Dispatch.
func generateShimCode(info shimInfo) (string, error) {
	params, err := collectParams(info.decl)
	if err != nil {
		return "", err
	}

	resultType, err := resultTypeString(info.decl)
	if err != nil {
		return "", err
	}

	identity := mockfn.CanonicalIdentity(info.args.namespace, info.args.function)

	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by shimgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", info.pkgName)
	fmt.Fprintf(&b, "import \"github.com/toejough/mockfn\"\n\n")
	fmt.Fprintf(&b, "// %s routes calls to %s through the mockfn registry, so tests can\n",
		info.wrapperName, info.args.function)
	fmt.Fprintf(&b, "// intercept them by enabling a mock for %s.\n", identity)
	fmt.Fprintf(&b, "func %s(%s) %s {\n", info.wrapperName, paramList(params), resultType)

	if resultType == "" {
		fmt.Fprintf(&b, "\tmockfn.Dispatch(%q, func(args ...any) any {\n", identity)
		fmt.Fprintf(&b, "\t\t%s(%s)\n\n", info.args.function, conversionList(params))
		fmt.Fprintf(&b, "\t\treturn nil\n")
		fmt.Fprintf(&b, "\t}%s)\n", dispatchArgs(params))
	} else {
		fmt.Fprintf(&b, "\tresult := mockfn.Dispatch(%q, func(args ...any) any {\n", identity)
		fmt.Fprintf(&b, "\t\treturn %s(%s)\n", info.args.function, conversionList(params))
		fmt.Fprintf(&b, "\t}%s)\n\n", dispatchArgs(params))
		fmt.Fprintf(&b, "\tret, _ := result.(%s)\n\n", resultType)
		fmt.Fprintf(&b, "\treturn ret\n")
	}

	fmt.Fprintf(&b, "}\n")

	return b.String(), nil
}

// param is one wrapper parameter: its name and rendered type.
type param struct {
	name    string
	typeStr string
}

// collectParams expands the declaration's parameter list into named,
// stringly-typed params, synthesizing names for unnamed parameters.
func collectParams(decl *dst.FuncDecl) ([]param, error) {
	var params []param

	fields := decl.Type.Params
	if fields == nil {
		return nil, nil
	}

	for _, field := range fields.List {
		typeStr, err := typeString(field.Type)
		if err != nil {
			return nil, err
		}

		if len(field.Names) == 0 {
			params = append(params, param{name: fmt.Sprintf("a%d", len(params)), typeStr: typeStr})

			continue
		}

		for _, name := range field.Names {
			params = append(params, param{name: name.Name, typeStr: typeStr})
		}
	}

	return params, nil
}

// conversionList renders the closure's call arguments, converting each
// args[i] back to the parameter's declared type.
func conversionList(params []param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("args[%d].(%s)", i, p.typeStr)
	}

	return strings.Join(parts, ", ")
}

// dispatchArgs renders the trailing Dispatch arguments: ", p0, p1, ...".
func dispatchArgs(params []param) string {
	if len(params) == 0 {
		return ""
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.name
	}

	return ", " + strings.Join(names, ", ")
}

// paramList renders the wrapper's parameter list.
func paramList(params []param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.name + " " + p.typeStr
	}

	return strings.Join(parts, ", ")
}

// resultTypeString renders the single result type, or "" for none.
func resultTypeString(decl *dst.FuncDecl) (string, error) {
	results := decl.Type.Results
	if results == nil || len(results.List) == 0 {
		return "", nil
	}

	return typeString(results.List[0].Type)
}

// typeString converts a DST type expression to its string representation.
// Only self-contained types are supported: qualified types would require
// import tracking in the generated file, and those shims are better written
// by hand.
func typeString(expr dst.Expr) (string, error) {
	switch typedExpr := expr.(type) {
	case *dst.Ident:
		return typedExpr.Name, nil
	case *dst.StarExpr:
		inner, err := typeString(typedExpr.X)
		if err != nil {
			return "", err
		}

		return "*" + inner, nil
	case *dst.ArrayType:
		if typedExpr.Len != nil {
			return "", fmt.Errorf("%w: fixed-size array type", errUnsupportedShape)
		}

		inner, err := typeString(typedExpr.Elt)
		if err != nil {
			return "", err
		}

		return "[]" + inner, nil
	case *dst.MapType:
		key, err := typeString(typedExpr.Key)
		if err != nil {
			return "", err
		}

		value, err := typeString(typedExpr.Value)
		if err != nil {
			return "", err
		}

		return "map[" + key + "]" + value, nil
	case *dst.SelectorExpr:
		return "", fmt.Errorf("%w: qualified type %s.%s needs import tracking; write this shim by hand",
			errUnsupportedShape, exprName(typedExpr.X), typedExpr.Sel.Name)
	default:
		return "", fmt.Errorf("%w: unsupported type expression %T", errUnsupportedShape, expr)
	}
}

// exprName best-effort renders an expression for error messages.
func exprName(expr dst.Expr) string {
	if ident, ok := expr.(*dst.Ident); ok {
		return ident.Name
	}

	return fmt.Sprintf("%T", expr)
}

// Package mockfn temporarily replaces globally-visible functions with
// caller-supplied stand-ins for the duration of a test, records every call
// made to them, and restores original behavior afterward.
//
// Call sites are made interceptable by routing them through Dispatch, either
// by hand or with the shims the shimgen tool generates. Each intercepted
// call consults the process-wide Registry at call time: if a Mock is enabled
// for the function's identity the call is forwarded to it (and recorded),
// otherwise the original behavior runs.
//
// This is the public API entry point. Implementation lives in internal/core.
package mockfn

import (
	"github.com/toejough/mockfn/internal/core"
)

// AlreadyEnabledError reports an Enable attempt for a function identity that
// already has an active registration.
type AlreadyEnabledError = core.AlreadyEnabledError

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// Mock represents one mockable global function with its own call history.
type Mock = core.Mock

// NewMock creates a Mock for the function named name in namespace.
func NewMock(namespace, name string, replacement ReplacementFunc) *Mock {
	return core.NewMock(namespace, name, replacement)
}

// Recorder keeps the ordered call history for a single Mock.
type Recorder = core.Recorder

// Registry is the process-wide authority mapping function identities to
// currently active Mocks.
type Registry = core.Registry

// GetRegistry returns the one process-wide Registry, creating it on first
// use.
func GetRegistry() *Registry {
	return core.GetRegistry()
}

// ReplacementFunc is an arity-flexible stand-in for a mocked function.
type ReplacementFunc = core.ReplacementFunc

// Functions re-exported from internal/core.

// Any returns a matcher that matches any value.
func Any() Matcher {
	return core.Any()
}

// CanonicalIdentity derives the registry key for a function from its
// namespace and name.
func CanonicalIdentity(namespace, name string) string {
	return core.CanonicalIdentity(namespace, name)
}

// DisableAll clears every active mock registration in the process,
// restoring original behavior for every identity. Intended as cleanup
// between independent test cases.
func DisableAll() {
	core.DisableAll()
}

// Dispatch is the interception hook consulted by every rewritten call site.
// If a Mock is enabled for identity the call is forwarded to it; otherwise
// original runs with the same arguments.
func Dispatch(identity string, original ReplacementFunc, args ...any) any {
	return core.Dispatch(identity, original, args...)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// TestReporter is the minimal interface mockfn needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Package core provides the internal implementation of mockfn's function
// interception engine: the Mock, Registry, and Recorder triad.
package core

// ReplacementFunc is an arity-flexible stand-in for a mocked function. It
// receives the intercepted call's arguments in order and produces the value
// the call site returns.
type ReplacementFunc func(args ...any) any

// Mock represents one mockable global function: the canonical identity of
// the function it replaces, the replacement behavior, and the call history.
//
// A Mock is reusable for the process lifetime. Enable and Disable may be
// called any number of times; the Recorder is never reset, so history
// accumulates across enable/disable cycles of the same instance. The
// Registry holds only a lookup reference to an enabled Mock - the caller
// keeps ownership.
//
// Mock lifecycle operations are expected to be serialized by the test suite;
// the Registry protects its own state, but enabling the same identity from
// two goroutines at once is a programmer error.
type Mock struct {
	namespace   string
	name        string
	replacement ReplacementFunc
	recorder    *Recorder
}

// NewMock creates a Mock for the function named name in namespace, with a
// fresh Recorder. The identity components are stored verbatim; normalization
// happens at identity-computation time.
func NewMock(namespace, name string, replacement ReplacementFunc) *Mock {
	if name == "" {
		panic("mockfn: mock function name must not be empty")
	}

	if replacement == nil {
		panic("mockfn: replacement function must not be nil")
	}

	return &Mock{
		namespace:   namespace,
		name:        name,
		replacement: replacement,
		recorder:    NewRecorder(),
	}
}

// Call records args in the Recorder and then invokes the replacement,
// returning its result. Recording happens first, so a replacement that
// panics still leaves an accurate call record; the panic propagates
// unchanged to the intercepted call site.
//
// Call is the entry point used by Dispatch. Test code normally inspects the
// Recorder instead of calling it directly.
func (m *Mock) Call(args ...any) any {
	m.recorder.Record(args)

	return m.replacement(args...)
}

// CanonicalIdentity returns the Registry key for this Mock.
func (m *Mock) CanonicalIdentity() string {
	return CanonicalIdentity(m.namespace, m.name)
}

// Disable removes this instance's registration, restoring original behavior
// for the identity. Disabling a mock that is not enabled, or whose identity
// is held by a different instance, is a no-op.
func (m *Mock) Disable() {
	GetRegistry().Unregister(m)
}

// Enable installs the interception point for this Mock's identity (a no-op
// if it already exists) and registers the Mock as the active one.
//
// Returns *AlreadyEnabledError if any Mock - including a different instance
// for the same identity - is already registered. The conflicting mock must
// be disabled first.
func (m *Mock) Enable() error {
	reg := GetRegistry()

	if reg.IsRegistered(m) {
		return &AlreadyEnabledError{Namespace: m.namespace, Name: m.name}
	}

	reg.Install(m.CanonicalIdentity())
	reg.Register(m)

	return nil
}

// Name returns the function name as given to NewMock.
func (m *Mock) Name() string {
	return m.name
}

// Namespace returns the namespace as given to NewMock.
func (m *Mock) Namespace() string {
	return m.namespace
}

// Recorder returns the Mock's call history. The reference is stable for the
// Mock's lifetime.
func (m *Mock) Recorder() *Recorder {
	return m.recorder
}

// DisableAll clears every registration in the process-wide Registry,
// restoring original behavior for every identity. Intended as cleanup
// between independent test cases, regardless of which mocks were active.
func DisableAll() {
	GetRegistry().UnregisterAll()
}

package core

import (
	"fmt"
	"sync"
)

// Registry is the process-wide authority mapping canonical function
// identities to currently active Mocks, plus the ledger of identities whose
// interception point has been installed.
//
// All state is guarded by an RWMutex: intercepted calls look up mocks under
// a read lock, lifecycle operations take the write lock. Installation is
// idempotent and permanent for the process lifetime, independent of
// enable/disable cycles.
type Registry struct {
	mu        sync.RWMutex
	active    map[string]*Mock
	installed map[string]struct{}
}

// GetRegistry returns the one process-wide Registry, creating it on first
// use.
func GetRegistry() *Registry {
	registryOnce.Do(func() {
		registry = &Registry{
			active:    make(map[string]*Mock),
			installed: make(map[string]struct{}),
		}
	})

	return registry
}

// Install marks the interception point for identity as installed. Installing
// an already-installed identity is a no-op.
func (r *Registry) Install(identity string) {
	r.mu.Lock()
	r.installed[identity] = struct{}{}
	r.mu.Unlock()
}

// Installed reports whether the interception point for identity has ever
// been installed in this process.
func (r *Registry) Installed(identity string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.installed[identity]

	return ok
}

// IsRegistered reports whether any Mock is currently registered under m's
// identity. The registered instance does not need to be m itself.
func (r *Registry) IsRegistered(m *Mock) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.active[m.CanonicalIdentity()]

	return ok
}

// MockFor returns the active Mock for identity. The second return is false
// when no mock is registered, which intercepted call sites must treat as
// "run the original behavior", never as a failure.
func (r *Registry) MockFor(identity string) (*Mock, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.active[identity]

	return m, ok
}

// Register inserts m as the active Mock for its identity.
//
// Registering over an existing entry panics: Mock.Enable is the guarded path
// that checks IsRegistered first and returns the conflict as an error, so
// reaching the collision here means the caller bypassed it.
func (r *Registry) Register(m *Mock) {
	identity := m.CanonicalIdentity()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[identity]; ok {
		panic(fmt.Sprintf(
			"mockfn: a mock for %s is already registered; disable the active mock before registering another",
			identity,
		))
	}

	r.active[identity] = m
}

// Unregister removes the entry for m's identity only if the registered Mock
// is exactly m. Otherwise it is a no-op, so one Mock cannot accidentally
// disable another Mock's active registration.
func (r *Registry) Unregister(m *Mock) {
	identity := m.CanonicalIdentity()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active[identity] == m {
		delete(r.active, identity)
	}
}

// UnregisterAll clears every registration, unconditionally. The installation
// ledger is untouched: interception points outlive the mocks that installed
// them.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.active)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // the process-wide registry is the point of this package
	registry *Registry
	//nolint:gochecknoglobals // guards lazy creation of the registry
	registryOnce sync.Once
)

package mockfn

import "sync"

// Invocation captures one observed call through a Spy: the arguments, the
// delegate's result, and the panic value if the delegate panicked instead of
// returning.
type Invocation struct {
	Args       []any
	Result     any
	PanicValue any
}

// Spy is a Mock whose replacement delegates to a real function while
// capturing the outcome of every call. The embedded Mock's Recorder still
// holds the plain argument history; Invocations adds results and panics on
// top of it.
type Spy struct {
	*Mock

	mu          sync.Mutex
	invocations []Invocation
}

// NewSpy creates a Spy for the function named name in namespace. Calls
// routed to the Spy run delegate with the intercepted arguments; a
// panicking delegate still leaves a captured invocation, and the panic
// propagates unchanged.
func NewSpy(namespace, name string, delegate ReplacementFunc) *Spy {
	if delegate == nil {
		panic("mockfn: spy delegate function must not be nil")
	}

	spy := &Spy{}
	spy.Mock = NewMock(namespace, name, spy.observing(delegate))

	return spy
}

// Invocations returns every captured invocation in call order. The returned
// slice is a copy.
func (s *Spy) Invocations() []Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Invocation, len(s.invocations))
	copy(out, s.invocations)

	return out
}

// observing wraps delegate so that each call's outcome is captured before
// the result (or panic) is handed back to the call site.
func (s *Spy) observing(delegate ReplacementFunc) ReplacementFunc {
	return func(args ...any) any {
		inv := Invocation{Args: make([]any, len(args))}
		copy(inv.Args, args)

		defer func() {
			if p := recover(); p != nil {
				inv.PanicValue = p
				s.capture(inv)
				panic(p)
			}

			s.capture(inv)
		}()

		inv.Result = delegate(args...)

		return inv.Result
	}
}

func (s *Spy) capture(inv Invocation) {
	s.mu.Lock()
	s.invocations = append(s.invocations, inv)
	s.mu.Unlock()
}

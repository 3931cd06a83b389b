package core

import "fmt"

// Dispatch is the interception hook consulted by every rewritten call site.
// It looks up the active Mock for identity at call time: if one is
// registered, the call is forwarded to Mock.Call (recording the arguments
// and running the replacement); otherwise original runs with the same
// arguments.
//
// The routing decision happens per call, never at installation time, so
// enabling or disabling mocks after a call site has been rewritten changes
// behavior without any reinstallation.
func Dispatch(identity string, original ReplacementFunc, args ...any) any {
	if m, ok := GetRegistry().MockFor(identity); ok {
		return m.Call(args...)
	}

	if original == nil {
		panic(fmt.Sprintf(
			"mockfn: no mock is active for %s and the call site provided no original behavior",
			identity,
		))
	}

	return original(args...)
}

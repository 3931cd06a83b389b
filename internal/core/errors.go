package core

import "fmt"

// AlreadyEnabledError reports an Enable attempt for a function identity that
// already has an active registration. The check is identity-based, so the
// conflicting registration may belong to a different Mock instance.
type AlreadyEnabledError struct {
	Namespace string
	Name      string
}

// Error describes the conflict and the way out of it.
func (e *AlreadyEnabledError) Error() string {
	return fmt.Sprintf(
		"a mock for %s is already enabled; disable it before enabling another",
		CanonicalIdentity(e.Namespace, e.Name),
	)
}

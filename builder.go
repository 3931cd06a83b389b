package mockfn

// MockBuilder assembles the namespace, name, and replacement function for a
// Mock, for callers that prefer building the triple up incrementally over
// the positional NewMock constructor. The zero value is ready to use.
type MockBuilder struct {
	namespace   string
	name        string
	replacement ReplacementFunc
}

// NewMockBuilder creates an empty MockBuilder.
func NewMockBuilder() *MockBuilder {
	return &MockBuilder{}
}

// Build creates the Mock from the collected pieces. The name and function
// are required; building without them panics, since the builder was driven
// by code, not data.
func (b *MockBuilder) Build() *Mock {
	if b.name == "" {
		panic("mockfn: MockBuilder requires a function name before Build")
	}

	if b.replacement == nil {
		panic("mockfn: MockBuilder requires a replacement function before Build")
	}

	return NewMock(b.namespace, b.name, b.replacement)
}

// SetFunction sets the replacement function and returns the builder.
func (b *MockBuilder) SetFunction(replacement ReplacementFunc) *MockBuilder {
	b.replacement = replacement

	return b
}

// SetName sets the function name and returns the builder.
func (b *MockBuilder) SetName(name string) *MockBuilder {
	b.name = name

	return b
}

// SetNamespace sets the namespace and returns the builder.
func (b *MockBuilder) SetNamespace(namespace string) *MockBuilder {
	b.namespace = namespace

	return b
}

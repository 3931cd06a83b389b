package core

import "sync"

// Recorder keeps the ordered call history for a single Mock. Each recorded
// entry is the argument list of one call, in call order. Entries are never
// reordered, deduplicated, or removed for the lifetime of the Mock.
type Recorder struct {
	mu    sync.Mutex
	calls [][]any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a snapshot of args. The snapshot is independent of the
// caller's slice, so later mutation of the original arguments does not
// rewrite history.
func (r *Recorder) Record(args []any) {
	snapshot := make([]any, len(args))
	copy(snapshot, args)

	r.mu.Lock()
	r.calls = append(r.calls, snapshot)
	r.mu.Unlock()
}

// Calls returns every recorded argument list in call order, including
// duplicates. The returned slice is a copy; appending to it or reslicing it
// does not affect the Recorder.
func (r *Recorder) Calls() [][]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]any, len(r.calls))
	copy(out, r.calls)

	return out
}

// CallCount returns the number of recorded calls.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

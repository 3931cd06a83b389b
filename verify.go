package mockfn

import (
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
)

// VerifyCallCount fails t unless rec holds exactly want recorded calls.
func VerifyCallCount(t TestReporter, rec *Recorder, want int) {
	t.Helper()

	got := rec.CallCount()
	if got != want {
		t.Fatalf("expected exactly %d recorded call(s), but found %d:\n%s",
			want, got, formatCalls(rec.Calls()))
	}
}

// VerifyCalled fails t unless rec holds at least one recorded call.
func VerifyCalled(t TestReporter, rec *Recorder) {
	t.Helper()

	if rec.CallCount() == 0 {
		t.Fatalf("expected at least one recorded call, but found none")
	}
}

// VerifyCalledMatching fails t unless at least one recorded call has
// arguments matching the given matchers, position by position. Plain values
// may be mixed in; they are compared with DeepEqual.
func VerifyCalledMatching(t TestReporter, rec *Recorder, matchers ...any) {
	t.Helper()

	verifyAnyCallMatches(t, rec, matchers)
}

// VerifyCalledWith fails t unless at least one recorded call has exactly the
// given arguments. Matchers may be mixed in for positions where the exact
// value is uninteresting.
func VerifyCalledWith(t TestReporter, rec *Recorder, args ...any) {
	t.Helper()

	verifyAnyCallMatches(t, rec, args)
}

// VerifyNotCalled fails t if rec holds any recorded calls.
func VerifyNotCalled(t TestReporter, rec *Recorder) {
	t.Helper()

	if count := rec.CallCount(); count > 0 {
		t.Fatalf("expected no recorded calls, but found %d:\n%s",
			count, formatCalls(rec.Calls()))
	}
}

// callMatches reports whether recorded matches expected position by
// position, collecting the first mismatch description.
func callMatches(recorded, expected []any) (bool, string) {
	if len(recorded) != len(expected) {
		return false, fmt.Sprintf("expected %d args, got %d", len(expected), len(recorded))
	}

	for i, want := range expected {
		ok, msg := MatchValue(recorded[i], want)
		if !ok {
			return false, fmt.Sprintf("arg %d: %s", i, msg)
		}
	}

	return true, ""
}

// formatCalls renders recorded calls one per line for failure output.
func formatCalls(calls [][]any) string {
	if len(calls) == 0 {
		return "(no calls)"
	}

	lines := make([]string, len(calls))
	for i, call := range calls {
		lines[i] = fmt.Sprintf("call %d: %#v", i, call)
	}

	return strings.Join(lines, "\n")
}

func verifyAnyCallMatches(t TestReporter, rec *Recorder, expected []any) {
	t.Helper()

	calls := rec.Calls()
	mismatches := make([]string, 0, len(calls))

	for _, call := range calls {
		ok, msg := callMatches(call, expected)
		if ok {
			return
		}

		mismatches = append(mismatches, msg)
	}

	wantLine := fmt.Sprintf("call: %#v\n", expected)

	gotLines := make([]string, len(calls))
	for i, call := range calls {
		gotLines[i] = fmt.Sprintf("call: %#v", call)
	}

	diff := textdiff.Unified("expected", "recorded", wantLine, strings.Join(gotLines, "\n")+"\n")

	t.Fatalf("no recorded call matched.\nmismatches:\n%s\ndiff:\n%s",
		strings.Join(mismatches, "\n"), diff)
}

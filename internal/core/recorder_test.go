package core_test

import (
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/mockfn"
	"pgregory.net/rapid"
)

// newRecorder builds a throwaway Recorder through its owning Mock, which is
// the only way recorders come into existence.
func newRecorder() *mockfn.Recorder {
	return mockfn.NewMock("rec", "scratch", func(...any) any { return nil }).Recorder()
}

// TestRecorder_CallsInOrder verifies insertion order equals call order.
func TestRecorder_CallsInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := newRecorder()
	rec.Record([]any{1, 2})
	rec.Record([]any{"three"})
	rec.Record([]any{})

	g.Expect(rec.Calls()).To(Equal([][]any{{1, 2}, {"three"}, {}}))
}

// TestRecorder_DuplicatesPreserved verifies identical argument lists are
// never deduplicated.
func TestRecorder_DuplicatesPreserved(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := newRecorder()
	rec.Record([]any{7})
	rec.Record([]any{7})

	g.Expect(rec.Calls()).To(HaveLen(2))
	g.Expect(rec.CallCount()).To(Equal(2))
}

// TestRecorder_RecordSnapshotsArgs verifies that mutating the caller's
// argument slice after Record does not rewrite history.
func TestRecorder_RecordSnapshotsArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := newRecorder()
	args := []any{"original"}
	rec.Record(args)

	args[0] = "mutated"

	g.Expect(rec.Calls()[0]).To(Equal([]any{"original"}))
}

// TestRecorder_CallsReturnsCopy verifies that the slice returned by Calls is
// independent of the Recorder's internal state.
func TestRecorder_CallsReturnsCopy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	rec := newRecorder()
	rec.Record([]any{1})

	first := rec.Calls()
	first[0] = []any{99}

	g.Expect(rec.Calls()[0]).To(Equal([]any{1}))
}

// TestRecorder_ConcurrentRecords_Rapid verifies as a property that
// concurrent recording loses no calls.
func TestRecorder_ConcurrentRecords_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		numGoroutines := rapid.IntRange(2, 50).Draw(rt, "numGoroutines")
		rec := newRecorder()

		var wg sync.WaitGroup
		wg.Add(numGoroutines)

		for i := range numGoroutines {
			go func(idx int) {
				defer wg.Done()
				rec.Record([]any{idx})
			}(i)
		}

		wg.Wait()

		if rec.CallCount() != numGoroutines {
			rt.Fatalf("expected %d recorded calls, got %d", numGoroutines, rec.CallCount())
		}
	})
}

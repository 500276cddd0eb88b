package selftime

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"chrometrace-mcp/internal/chrometrace"
)

// Compute fills in Self for every interval in intervals, in place. The
// slice must hold the intervals of a single thread; intervals from one
// thread either nest or are disjoint, because a thread executes
// operations in strict call/return order. Input that violates this
// (two intervals overlapping without one containing the other) is
// rejected with an error naming the conflicting pair.
//
// When two intervals share identical bounds, the one later in the
// slice is treated as nested inside the earlier one, so the earlier
// "wrapper" ends up with zero self time for the shared span. This
// follows the instrumentation convention of emitting an outer wrapper
// before its identically-bounded inner operation; it is a policy
// choice, not a property of the underlying call structure.
//
// Compute ignores any prior Self values, so running it again on an
// already-annotated slice is harmless. The slice order is left exactly
// as given.
//
// Cost is O(n log n) for the sort plus one O(n) pass. The obvious
// all-pairs approach is O(n^2) and falls over on real traces, which
// reach tens of thousands of intervals per thread.
func Compute(intervals []Interval) error {
	if len(intervals) == 0 {
		return nil
	}

	// Sort a view of the slice so the caller's ordering survives.
	// Containers sort before the intervals they contain: earlier begin
	// first, then longer span first, so an interval that shares its
	// container's begin still comes after it. The stable sort keeps
	// equal-bounds intervals in input order, which is what the
	// tie-break below relies on.
	sorted := make([]*Interval, len(intervals))
	for i := range intervals {
		sorted[i] = &intervals[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Begin != sorted[j].Begin {
			return sorted[i].Begin < sorted[j].Begin
		}
		return sorted[i].End > sorted[j].End
	})

	// Invariant: the stack holds the chain of currently-open intervals,
	// innermost on top, each with Self still counting its whole span
	// minus the spans of already-closed direct children.
	var open []*Interval
	for _, iv := range sorted {
		for len(open) > 0 {
			top := open[len(open)-1]
			if top.Begin <= iv.Begin && top.End >= iv.End {
				break
			}
			// top.Begin <= iv.Begin always holds after the sort, so a
			// failed containment check means top ends before iv does.
			// If top ends strictly inside iv the two overlap without
			// nesting, which a single thread cannot produce.
			if top.End > iv.Begin {
				return fmt.Errorf("intervals %q [%d, %d) and %q [%d, %d) overlap without nesting", top.Name, top.Begin, top.End, iv.Name, iv.Begin, iv.End)
			}
			open = open[:len(open)-1]
			if len(open) > 0 {
				open[len(open)-1].Self -= top.Duration()
			}
		}
		iv.Self = iv.Duration()
		open = append(open, iv)
	}
	for len(open) > 0 {
		top := open[len(open)-1]
		open = open[:len(open)-1]
		if len(open) > 0 {
			open[len(open)-1].Self -= top.Duration()
		}
	}
	return nil
}

// ComputeAll runs Compute on every thread's interval list. Threads are
// independent timelines, so they are processed concurrently; the maps
// and slices are annotated in place.
func ComputeAll(byThread map[chrometrace.ThreadID][]Interval) error {
	var g errgroup.Group
	for _, intervals := range byThread {
		g.Go(func() error {
			return Compute(intervals)
		})
	}
	return g.Wait()
}

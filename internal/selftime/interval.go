// Package selftime computes per-interval self time for the intervals
// recorded on one thread: the portion of an interval's duration not
// covered by intervals nested inside it.
package selftime

// Interval is one named time span recorded on one thread. Begin and End
// are microsecond timestamps with End >= Begin. Self is filled in by
// Compute and satisfies 0 <= Self <= End-Begin.
//
// Two intervals with identical name and bounds are distinguished by
// their position in the slice they arrived in; that position is the
// tie-break key for nesting decisions.
type Interval struct {
	Name  string
	Begin int64
	End   int64
	Self  int64
}

// Duration returns the wall-clock span of the interval.
func (iv Interval) Duration() int64 {
	return iv.End - iv.Begin
}

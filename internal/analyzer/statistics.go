package analyzer

import (
	"chrometrace-mcp/internal/chrometrace"
	"chrometrace-mcp/internal/selftime"
)

// TraceStatistics contains summary statistics about an analyzed trace.
type TraceStatistics struct {
	ThreadCount     int
	IntervalCount   int
	TotalSelfMicros int64
	WallSpanMicros  int64 // Earliest begin to latest end across all threads
	UniqueNames     int
	BusiestThread   chrometrace.ThreadID
	BusiestMicros   int64
}

// ComputeStatistics calculates summary statistics for a set of
// annotated per-thread interval lists.
func ComputeStatistics(byThread map[chrometrace.ThreadID][]selftime.Interval) TraceStatistics {
	stats := TraceStatistics{ThreadCount: len(byThread)}

	nameSet := make(map[string]bool)
	var earliest, latest int64
	first := true

	for id, intervals := range byThread {
		stats.IntervalCount += len(intervals)

		var threadSelf int64
		for _, iv := range intervals {
			threadSelf += iv.Self
			nameSet[iv.Name] = true

			if first || iv.Begin < earliest {
				earliest = iv.Begin
			}
			if first || iv.End > latest {
				latest = iv.End
			}
			first = false
		}

		stats.TotalSelfMicros += threadSelf
		if threadSelf > stats.BusiestMicros {
			stats.BusiestThread = id
			stats.BusiestMicros = threadSelf
		}
	}

	stats.UniqueNames = len(nameSet)
	if !first {
		stats.WallSpanMicros = latest - earliest
	}
	return stats
}

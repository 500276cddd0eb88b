package selftime

import (
	"fmt"

	"chrometrace-mcp/internal/chrometrace"
)

// Extract converts raw trace events into per-thread interval lists.
//
// Only complete ("X") events on threads in scope produce intervals.
// Events without a duration field are silently skipped: some
// instrumentation emits complete events with no "dur", and dropping
// them is a known data gap rather than a defect. A negative duration is
// different; it indicates an upstream bug and fails the extraction.
//
// The relative order of events within one thread is preserved in that
// thread's interval list.
func Extract(events []chrometrace.TraceEvent, scope []chrometrace.ThreadID) (map[chrometrace.ThreadID][]Interval, error) {
	inScope := make(map[chrometrace.ThreadID]bool, len(scope))
	for _, id := range scope {
		inScope[id] = true
	}

	byThread := make(map[chrometrace.ThreadID][]Interval)
	for _, e := range events {
		if e.Phase != chrometrace.CompleteEvent {
			continue
		}
		id := chrometrace.ThreadID{PID: e.ProcessID, TID: e.ThreadID}
		if !inScope[id] {
			continue
		}
		if e.DurationMicros == nil {
			// Missing duration is a known instrumentation gap.
			continue
		}
		dur := *e.DurationMicros
		if dur < 0 {
			return nil, fmt.Errorf("event %q (pid %d, tid %d, ts %d) has negative duration %d", e.Name, e.ProcessID, e.ThreadID, e.TimestampMicros, dur)
		}
		byThread[id] = append(byThread[id], Interval{
			Name:  e.Name,
			Begin: e.TimestampMicros,
			End:   e.TimestampMicros + dur,
		})
	}
	return byThread, nil
}

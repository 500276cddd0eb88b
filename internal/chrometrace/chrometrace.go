package chrometrace

// TraceEvent is a single entry of Chrome's Trace Event Format.
//
// https://docs.google.com/document/d/1CvAClvFfyA5R-PhYUmn5OOQtYMH4h6I0nSsKchNAySU
type TraceEvent struct {
	Name            string `json:"name"`
	Category        string `json:"cat"`
	Phase           string `json:"ph"`
	TimestampMicros int64  `json:"ts"`
	// DurationMicros is only present on complete ("X") events, and some
	// instrumentation emits complete events without it. A nil pointer
	// means the field was absent, which is not the same as a zero
	// duration.
	DurationMicros *int64         `json:"dur,omitempty"`
	ProcessID      int            `json:"pid"`
	ThreadID       int            `json:"tid"`
	Args           map[string]any `json:"args,omitempty"`
}

// Phase values used by this package.
const (
	CompleteEvent = "X"
	MetadataEvent = "M"
)

// MetadataCategory marks process/thread metadata records.
const MetadataCategory = "__metadata"

// Container is the top-level trace file object.
type Container struct {
	TraceEvents []TraceEvent `json:"traceEvents"`
}

// ThreadID identifies one thread within one process. It is a grouping
// key only; values are never compared for ordering.
type ThreadID struct {
	PID int
	TID int
}

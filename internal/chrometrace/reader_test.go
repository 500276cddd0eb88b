package chrometrace

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const traceJSON = `{
  "traceEvents": [
    {"name": "process_name", "cat": "__metadata", "ph": "M", "pid": 7, "tid": 0, "args": {"name": "Renderer"}},
    {"name": "Layout", "cat": "blink", "ph": "X", "ts": 100, "dur": 40, "pid": 7, "tid": 12},
    {"name": "NoDuration", "cat": "blink", "ph": "X", "ts": 150, "pid": 7, "tid": 12}
  ]
}`

func wantContainer() *Container {
	dur := int64(40)
	return &Container{TraceEvents: []TraceEvent{
		{Name: "process_name", Category: "__metadata", Phase: "M", ProcessID: 7, Args: map[string]any{"name": "Renderer"}},
		{Name: "Layout", Category: "blink", Phase: "X", TimestampMicros: 100, DurationMicros: &dur, ProcessID: 7, ThreadID: 12},
		{Name: "NoDuration", Category: "blink", Phase: "X", TimestampMicros: 150, ProcessID: 7, ThreadID: 12},
	}}
}

func TestReadTrace(t *testing.T) {
	got, err := ReadTrace(strings.NewReader(traceJSON))
	if err != nil {
		t.Fatalf("ReadTrace returned error: %v", err)
	}
	if diff := cmp.Diff(wantContainer(), got); diff != "" {
		t.Errorf("Got container diff (-want +got):\n%s", diff)
	}
}

func TestReadTraceGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(traceJSON)); err != nil {
		t.Fatalf("Writing gzip test input: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Closing gzip test input: %v", err)
	}

	got, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace returned error: %v", err)
	}
	if diff := cmp.Diff(wantContainer(), got); diff != "" {
		t.Errorf("Got container diff (-want +got):\n%s", diff)
	}
}

func TestReadTraceInvalidJSON(t *testing.T) {
	if _, err := ReadTrace(strings.NewReader("not json")); err == nil {
		t.Error("ReadTrace on invalid input returned nil error, want error")
	}
}

func TestReadTraceEmptyInput(t *testing.T) {
	if _, err := ReadTrace(strings.NewReader("")); err == nil {
		t.Error("ReadTrace on empty input returned nil error, want error")
	}
}

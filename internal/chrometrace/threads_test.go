package chrometrace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func processMeta(pid int, name string) TraceEvent {
	return TraceEvent{
		Name:      "process_name",
		Category:  MetadataCategory,
		Phase:     MetadataEvent,
		ProcessID: pid,
		Args:      map[string]any{"name": name},
	}
}

func threadMeta(pid, tid int, name string) TraceEvent {
	return TraceEvent{
		Name:      "thread_name",
		Category:  MetadataCategory,
		Phase:     MetadataEvent,
		ProcessID: pid,
		ThreadID:  tid,
		Args:      map[string]any{"name": name},
	}
}

func TestSelectThreads(t *testing.T) {
	for _, tc := range []struct {
		name   string
		events []TraceEvent
		want   []ThreadID
	}{
		{
			name: "no metadata",
			events: []TraceEvent{
				{Name: "Layout", Category: "blink", Phase: "X", ProcessID: 7, ThreadID: 12},
			},
		},
		{
			name: "single renderer main thread",
			events: []TraceEvent{
				processMeta(7, "Renderer"),
				threadMeta(7, 12, "CrRendererMain"),
			},
			want: []ThreadID{{PID: 7, TID: 12}},
		},
		{
			name: "thread in a non-renderer process is excluded",
			events: []TraceEvent{
				processMeta(3, "Browser"),
				threadMeta(3, 5, "CrRendererMain"),
			},
		},
		{
			name: "other threads of a renderer process are excluded",
			events: []TraceEvent{
				processMeta(7, "Renderer"),
				threadMeta(7, 12, "CrRendererMain"),
				threadMeta(7, 13, "Compositor"),
			},
			want: []ThreadID{{PID: 7, TID: 12}},
		},
		{
			name: "multiple renderer processes in metadata order",
			events: []TraceEvent{
				processMeta(7, "Renderer"),
				processMeta(9, "Renderer"),
				threadMeta(9, 21, "CrRendererMain"),
				threadMeta(7, 12, "CrRendererMain"),
			},
			want: []ThreadID{{PID: 9, TID: 21}, {PID: 7, TID: 12}},
		},
		{
			name: "thread metadata before process metadata still matches",
			events: []TraceEvent{
				threadMeta(7, 12, "CrRendererMain"),
				processMeta(7, "Renderer"),
			},
			want: []ThreadID{{PID: 7, TID: 12}},
		},
		{
			name: "metadata without a name argument is ignored",
			events: []TraceEvent{
				{Name: "process_name", Category: MetadataCategory, Phase: MetadataEvent, ProcessID: 7},
				threadMeta(7, 12, "CrRendererMain"),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := RendererThreads(tc.events)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Got thread diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectThreadsCustomNames(t *testing.T) {
	events := []TraceEvent{
		processMeta(2, "GPU Process"),
		threadMeta(2, 4, "CrGpuMain"),
	}
	want := []ThreadID{{PID: 2, TID: 4}}
	got := SelectThreads(events, "GPU Process", "CrGpuMain")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Got thread diff (-want +got):\n%s", diff)
	}
}

package chrometrace

// Names used by Chrome's metadata records for the renderer main thread.
const (
	RendererProcessName = "Renderer"
	RendererThreadName  = "CrRendererMain"
	processNameMetadata = "process_name"
	threadNameMetadata  = "thread_name"
)

// SelectThreads returns the threads whose process metadata record names
// processName and whose thread metadata record names threadName. The
// result preserves the order in which the thread metadata records
// appear in the trace.
func SelectThreads(events []TraceEvent, processName, threadName string) []ThreadID {
	pids := make(map[int]bool)
	for _, e := range events {
		if e.Category != MetadataCategory || e.Name != processNameMetadata {
			continue
		}
		if metadataName(e) != processName {
			continue
		}
		pids[e.ProcessID] = true
	}

	var ids []ThreadID
	for _, e := range events {
		if e.Category != MetadataCategory || e.Name != threadNameMetadata {
			continue
		}
		if metadataName(e) != threadName {
			continue
		}
		if !pids[e.ProcessID] {
			continue
		}
		ids = append(ids, ThreadID{PID: e.ProcessID, TID: e.ThreadID})
	}
	return ids
}

// RendererThreads returns the renderer main threads recorded in the
// trace metadata.
func RendererThreads(events []TraceEvent) []ThreadID {
	return SelectThreads(events, RendererProcessName, RendererThreadName)
}

func metadataName(e TraceEvent) string {
	name, _ := e.Args["name"].(string)
	return name
}

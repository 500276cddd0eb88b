// analyze prints a self-time breakdown of renderer main thread time
// from a Chrome trace.
//
// usage:
//
//	1) Navigate to chrome://tracing and record a trace with the
//	   categories: blink, cc, gpu, loading, mojom, toplevel, v8.
//	2) In a new tab, navigate to some page.
//	3) Stop tracing and save the trace.
//	4) Run analyze -trace trace.json (gzipped traces work too)
package main

import (
	"flag"
	"fmt"
	"log"

	"chrometrace-mcp/internal/analyzer"
	"chrometrace-mcp/internal/chrometrace"
	"chrometrace-mcp/internal/selftime"
)

var (
	tracePath   = flag.String("trace", "", "path of the trace file to analyze, in trace event JSON format")
	topN        = flag.Int("top", 10, "number of event names to show in the ranking")
	processName = flag.String("process", chrometrace.RendererProcessName, "process name to match in trace metadata")
	threadName  = flag.String("thread", chrometrace.RendererThreadName, "thread name to match in trace metadata")
)

func main() {
	flag.Parse()

	if *tracePath == "" {
		log.Fatalf("-trace is required")
	}

	container, err := chrometrace.ReadTraceFile(*tracePath)
	if err != nil {
		log.Fatalf("Failed to read trace: %v", err)
	}

	threads := chrometrace.SelectThreads(container.TraceEvents, *processName, *threadName)
	if len(threads) == 0 {
		log.Fatalf("No %s/%s threads found in trace metadata", *processName, *threadName)
	}

	byThread, err := selftime.Extract(container.TraceEvents, threads)
	if err != nil {
		log.Fatalf("Failed to extract intervals: %v", err)
	}
	if err := selftime.ComputeAll(byThread); err != nil {
		log.Fatalf("Failed to compute self times: %v", err)
	}

	for _, id := range threads {
		fmt.Printf("id: (%d, %d)\n", id.PID, id.TID)
		fmt.Printf("event count: %d\n", len(byThread[id]))
	}
	fmt.Println()

	fmt.Printf("Top %d event names by self time:\n\n", *topN)
	for i, nt := range analyzer.NameBreakdown(byThread, analyzer.DefaultCategorizer, *topN) {
		fmt.Print(analyzer.FormatNameTotal(nt, i+1))
	}
	fmt.Println()

	fmt.Println("Self time by category:")
	fmt.Println()
	for i, ct := range analyzer.CategoryBreakdown(byThread, analyzer.DefaultCategorizer, 0) {
		fmt.Print(analyzer.FormatCategoryTotal(ct, i+1))
	}
}

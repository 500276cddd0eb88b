package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chrometrace-mcp/internal/analyzer"
	"chrometrace-mcp/internal/chrometrace"
	"chrometrace-mcp/internal/selftime"
)

// analyzedTrace is one loaded trace with self times already computed.
type analyzedTrace struct {
	threads  []chrometrace.ThreadID
	byThread map[chrometrace.ThreadID][]selftime.Interval
}

// Trace cache
var traceCache = make(map[string]*analyzedTrace)

func loadTrace(filePath string) (*analyzedTrace, error) {
	container, err := chrometrace.ReadTraceFile(filePath)
	if err != nil {
		return nil, err
	}

	threads := chrometrace.RendererThreads(container.TraceEvents)
	byThread, err := selftime.Extract(container.TraceEvents, threads)
	if err != nil {
		return nil, fmt.Errorf("extracting intervals: %w", err)
	}
	if err := selftime.ComputeAll(byThread); err != nil {
		return nil, fmt.Errorf("computing self times: %w", err)
	}

	return &analyzedTrace{threads: threads, byThread: byThread}, nil
}

func main() {
	// Create MCP server
	s := server.NewMCPServer(
		"chrometrace-analyzer",
		"1.0.0",
		server.WithLogging(),
	)

	// Tool 1: Load Trace
	loadTraceTool := mcp.NewTool("load_trace",
		mcp.WithDescription("Load a Chrome trace file (trace.json or trace.json.gz from chrome://tracing) and compute per-interval self times for the renderer main thread"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Absolute path to the trace file"),
		),
	)

	s.AddTool(loadTraceTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		trace, err := loadTrace(filePath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load trace: %v", err)), nil
		}

		traceCache[filePath] = trace

		stats := analyzer.ComputeStatistics(trace.byThread)

		result := fmt.Sprintf(`Trace loaded successfully!

File: %s
Renderer main threads: %d
Intervals: %d
Total self time: %s
Wall span: %s

Use other tools to analyze this trace.
`,
			filePath,
			stats.ThreadCount,
			stats.IntervalCount,
			analyzer.FormatMicros(stats.TotalSelfMicros),
			analyzer.FormatMicros(stats.WallSpanMicros),
		)

		return mcp.NewToolResultText(result), nil
	})

	// Tool 2: List Threads
	listThreadsTool := mcp.NewTool("list_threads",
		mcp.WithDescription("List the renderer main threads found in the trace metadata, with per-thread interval counts and self-time totals"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the loaded trace file"),
		),
	)

	s.AddTool(listThreadsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		trace, ok := traceCache[filePath]
		if !ok {
			return mcp.NewToolResultError("Trace not loaded. Use load_trace tool first"), nil
		}

		var sb strings.Builder
		sb.WriteString("RENDERER MAIN THREADS\n")
		sb.WriteString("═══════════════════════════════════════════════════\n\n")

		if len(trace.threads) == 0 {
			sb.WriteString("No renderer main threads found in trace metadata.\n")
		} else {
			for _, id := range trace.threads {
				intervals := trace.byThread[id]
				var threadSelf int64
				for _, iv := range intervals {
					threadSelf += iv.Self
				}
				sb.WriteString(fmt.Sprintf("pid %d, tid %d\n", id.PID, id.TID))
				sb.WriteString(fmt.Sprintf("    Intervals: %d\n", len(intervals)))
				sb.WriteString(fmt.Sprintf("    Self time: %s\n\n", analyzer.FormatMicros(threadSelf)))
			}
		}

		return mcp.NewToolResultText(sb.String()), nil
	})

	// Tool 3: Top Self Time
	topSelfTimeTool := mcp.NewTool("top_self_time",
		mcp.WithDescription("Rank event names by total self time across all renderer main threads. This is the most important tool for finding where thread time was actually spent."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the loaded trace file"),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Number of top names to return (default: 10)"),
		),
	)

	s.AddTool(topSelfTimeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		topN := 10
		if n := request.GetFloat("top_n", 10.0); n != 10.0 {
			topN = int(n)
		}

		trace, ok := traceCache[filePath]
		if !ok {
			return mcp.NewToolResultError("Trace not loaded. Use load_trace tool first"), nil
		}

		ranked := analyzer.NameBreakdown(trace.byThread, analyzer.DefaultCategorizer, topN)

		var sb strings.Builder
		sb.WriteString("TOP SELF-TIME EVENT NAMES\n")
		sb.WriteString("═══════════════════════════════════════════════════\n\n")

		if len(ranked) == 0 {
			sb.WriteString("No intervals found.\n")
		} else {
			for i, nt := range ranked {
				sb.WriteString(analyzer.FormatNameTotal(nt, i+1))
				sb.WriteString("\n")
			}
		}

		return mcp.NewToolResultText(sb.String()), nil
	})

	// Tool 4: Category Breakdown
	categoryBreakdownTool := mcp.NewTool("category_breakdown",
		mcp.WithDescription("Aggregate self time by functional category (script, style, layout, paint, compositing, loading, gpu, input, scheduling, other). Useful for a coarse view of where renderer time went."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the loaded trace file"),
		),
	)

	s.AddTool(categoryBreakdownTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		trace, ok := traceCache[filePath]
		if !ok {
			return mcp.NewToolResultError("Trace not loaded. Use load_trace tool first"), nil
		}

		ranked := analyzer.CategoryBreakdown(trace.byThread, analyzer.DefaultCategorizer, 0)

		var sb strings.Builder
		sb.WriteString("SELF TIME BY CATEGORY\n")
		sb.WriteString("═══════════════════════════════════════════════════\n\n")

		if len(ranked) == 0 {
			sb.WriteString("No intervals found.\n")
		}

		for i, ct := range ranked {
			sb.WriteString(analyzer.FormatCategoryTotal(ct, i+1))

			barLength := int(ct.Percentage / 2)
			if barLength > 50 {
				barLength = 50
			}
			sb.WriteString("    ")
			sb.WriteString(strings.Repeat("█", barLength))
			sb.WriteString("\n\n")
		}

		return mcp.NewToolResultText(sb.String()), nil
	})

	// Tool 5: Get Statistics
	getStatisticsTool := mcp.NewTool("get_statistics",
		mcp.WithDescription("Get summary statistics about the analyzed trace: thread count, interval count, total self time, wall span, unique event names and busiest thread."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the loaded trace file"),
		),
	)

	s.AddTool(getStatisticsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		trace, ok := traceCache[filePath]
		if !ok {
			return mcp.NewToolResultError("Trace not loaded. Use load_trace tool first"), nil
		}

		stats := analyzer.ComputeStatistics(trace.byThread)

		var sb strings.Builder
		sb.WriteString("TRACE STATISTICS\n")
		sb.WriteString("═══════════════════════════════════════════════════\n\n")

		sb.WriteString(fmt.Sprintf("Renderer main threads: %d\n", stats.ThreadCount))
		sb.WriteString(fmt.Sprintf("Intervals: %d\n", stats.IntervalCount))
		sb.WriteString(fmt.Sprintf("Unique event names: %d\n\n", stats.UniqueNames))

		sb.WriteString(fmt.Sprintf("Total self time: %s\n", analyzer.FormatMicros(stats.TotalSelfMicros)))
		sb.WriteString(fmt.Sprintf("Wall span: %s\n\n", analyzer.FormatMicros(stats.WallSpanMicros)))

		if stats.ThreadCount > 0 {
			sb.WriteString(fmt.Sprintf("Busiest thread: pid %d, tid %d (%s)\n",
				stats.BusiestThread.PID, stats.BusiestThread.TID,
				analyzer.FormatMicros(stats.BusiestMicros)))
		}

		return mcp.NewToolResultText(sb.String()), nil
	})

	// Tool 6: View Thread
	viewThreadTool := mcp.NewTool("view_thread",
		mcp.WithDescription("View the most expensive intervals (by self time) on one renderer main thread. Useful for drilling into a specific thread's timeline."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the loaded trace file"),
		),
		mcp.WithNumber("pid",
			mcp.Required(),
			mcp.Description("Process ID of the thread to view"),
		),
		mcp.WithNumber("tid",
			mcp.Required(),
			mcp.Description("Thread ID of the thread to view"),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Number of intervals to show (default: 20)"),
		),
	)

	s.AddTool(viewThreadTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		pid, err := request.RequireFloat("pid")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tid, err := request.RequireFloat("tid")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		topN := 20
		if n := request.GetFloat("top_n", 20.0); n != 20.0 {
			topN = int(n)
		}

		trace, ok := traceCache[filePath]
		if !ok {
			return mcp.NewToolResultError("Trace not loaded. Use load_trace tool first"), nil
		}

		id := chrometrace.ThreadID{PID: int(pid), TID: int(tid)}
		intervals, ok := trace.byThread[id]
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("No intervals for pid %d, tid %d. Use list_threads to see available threads", id.PID, id.TID)), nil
		}

		ranked := analyzer.TopIntervals(intervals, topN)

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("THREAD pid %d, tid %d\n", id.PID, id.TID))
		sb.WriteString("═══════════════════════════════════════════════════\n\n")
		sb.WriteString(fmt.Sprintf("Intervals: %d (showing top %d by self time)\n\n", len(intervals), len(ranked)))

		for i, iv := range ranked {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, iv.Name))
			sb.WriteString(fmt.Sprintf("   [%d, %d) duration %s, self %s\n\n",
				iv.Begin, iv.End,
				analyzer.FormatMicros(iv.Duration()),
				analyzer.FormatMicros(iv.Self)))
		}

		return mcp.NewToolResultText(sb.String()), nil
	})

	// Start the server
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

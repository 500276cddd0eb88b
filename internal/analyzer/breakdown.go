package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"chrometrace-mcp/internal/chrometrace"
	"chrometrace-mcp/internal/selftime"
)

// NameTotal is the aggregated self time of every interval sharing one
// event name, across all analyzed threads.
type NameTotal struct {
	Name          string
	Category      string
	SelfMicros    int64
	IntervalCount int
	Percentage    float64 // Percentage of total self time
}

// CategoryTotal is the aggregated self time of one functional category.
type CategoryTotal struct {
	Category      string
	SelfMicros    int64
	IntervalCount int
	Percentage    float64
}

// NameBreakdown aggregates self time by event name and returns the
// names ranked by total self time (descending). topN limits the result
// when positive. An empty input yields an empty slice.
func NameBreakdown(byThread map[chrometrace.ThreadID][]selftime.Interval, categorize Categorizer, topN int) []NameTotal {
	totals := make(map[string]*NameTotal)
	var totalSelf int64

	for _, intervals := range byThread {
		for _, iv := range intervals {
			totalSelf += iv.Self

			nt, ok := totals[iv.Name]
			if !ok {
				nt = &NameTotal{
					Name:     iv.Name,
					Category: categorize(iv.Name),
				}
				totals[iv.Name] = nt
			}
			nt.SelfMicros += iv.Self
			nt.IntervalCount++
		}
	}

	ranked := make([]NameTotal, 0, len(totals))
	for _, nt := range totals {
		if totalSelf > 0 {
			nt.Percentage = float64(nt.SelfMicros) / float64(totalSelf) * 100.0
		}
		ranked = append(ranked, *nt)
	}

	// Descending by self time; names tie-break alphabetically so the
	// ranking is deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SelfMicros != ranked[j].SelfMicros {
			return ranked[i].SelfMicros > ranked[j].SelfMicros
		}
		return ranked[i].Name < ranked[j].Name
	})

	if topN > 0 && topN < len(ranked) {
		return ranked[:topN]
	}
	return ranked
}

// CategoryBreakdown aggregates self time by functional category and
// returns the categories ranked by total self time (descending).
func CategoryBreakdown(byThread map[chrometrace.ThreadID][]selftime.Interval, categorize Categorizer, topN int) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var totalSelf int64

	for _, intervals := range byThread {
		for _, iv := range intervals {
			totalSelf += iv.Self

			category := categorize(iv.Name)
			ct, ok := totals[category]
			if !ok {
				ct = &CategoryTotal{Category: category}
				totals[category] = ct
			}
			ct.SelfMicros += iv.Self
			ct.IntervalCount++
		}
	}

	ranked := make([]CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		if totalSelf > 0 {
			ct.Percentage = float64(ct.SelfMicros) / float64(totalSelf) * 100.0
		}
		ranked = append(ranked, *ct)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].SelfMicros != ranked[j].SelfMicros {
			return ranked[i].SelfMicros > ranked[j].SelfMicros
		}
		return ranked[i].Category < ranked[j].Category
	})

	if topN > 0 && topN < len(ranked) {
		return ranked[:topN]
	}
	return ranked
}

// TopIntervals returns the topN intervals of one thread ranked by self
// time (descending), without mutating the thread's list.
func TopIntervals(intervals []selftime.Interval, topN int) []selftime.Interval {
	ranked := make([]selftime.Interval, len(intervals))
	copy(ranked, intervals)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Self > ranked[j].Self
	})

	if topN > 0 && topN < len(ranked) {
		return ranked[:topN]
	}
	return ranked
}

// FormatNameTotal returns a human-readable string representation of a
// ranked name total.
func FormatNameTotal(nt NameTotal, rank int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("#%d: %s\n", rank, nt.Name))
	sb.WriteString(fmt.Sprintf("    Self time: %s (%.2f%%)\n", FormatMicros(nt.SelfMicros), nt.Percentage))
	sb.WriteString(fmt.Sprintf("    Category: %s\n", nt.Category))
	sb.WriteString(fmt.Sprintf("    Intervals: %d\n", nt.IntervalCount))

	return sb.String()
}

// FormatCategoryTotal returns a human-readable string representation of
// a ranked category total.
func FormatCategoryTotal(ct CategoryTotal, rank int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("#%d: %s\n", rank, ct.Category))
	sb.WriteString(fmt.Sprintf("    Self time: %s (%.2f%%)\n", FormatMicros(ct.SelfMicros), ct.Percentage))
	sb.WriteString(fmt.Sprintf("    Intervals: %d\n", ct.IntervalCount))

	return sb.String()
}

// FormatMicros renders a microsecond quantity as seconds.
func FormatMicros(micros int64) string {
	return fmt.Sprintf("%.6f seconds", float64(micros)/1e6)
}

package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chrometrace-mcp/internal/chrometrace"
	"chrometrace-mcp/internal/selftime"
)

func TestComputeStatistics(t *testing.T) {
	for _, tc := range []struct {
		name     string
		byThread map[chrometrace.ThreadID][]selftime.Interval
		want     TraceStatistics
	}{
		{
			name: "empty",
		},
		{
			name: "thread without intervals",
			byThread: map[chrometrace.ThreadID][]selftime.Interval{
				threadA: nil,
			},
			want: TraceStatistics{ThreadCount: 1},
		},
		{
			name: "two threads",
			byThread: map[chrometrace.ThreadID][]selftime.Interval{
				threadA: {
					{Name: "Layout", Begin: 100, End: 160, Self: 40},
					{Name: "Paint", Begin: 120, End: 140, Self: 20},
				},
				threadB: {
					{Name: "Layout", Begin: 50, End: 70, Self: 20},
				},
			},
			want: TraceStatistics{
				ThreadCount:     2,
				IntervalCount:   3,
				TotalSelfMicros: 80,
				WallSpanMicros:  110, // 50 through 160
				UniqueNames:     2,
				BusiestThread:   threadA,
				BusiestMicros:   60,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStatistics(tc.byThread)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Got statistics diff (-want +got):\n%s", diff)
			}
		})
	}
}

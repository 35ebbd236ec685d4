package graph

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{
			name:  "mid month",
			start: "2024-03-01",
			want:  "2024-04-01",
		},
		{
			name:  "leap year overflow clip",
			start: "2024-01-31",
			want:  "2024-02-29",
		},
		{
			name:  "non-leap year overflow clip",
			start: "2023-01-31",
			want:  "2023-02-28",
		},
		{
			name:  "thirty day month clip",
			start: "2024-03-31",
			want:  "2024-04-30",
		},
		{
			name:  "year rollover",
			start: "2023-12-15",
			want:  "2024-01-15",
		},
		{
			name:  "december end of month",
			start: "2023-12-31",
			want:  "2024-01-31",
		},
		{
			name:  "leap day start",
			start: "2024-02-29",
			want:  "2024-03-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startDate, err := time.Parse(DateFormat, tt.start)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.start, err)
			}
			start, end := MonthWindow(startDate)
			if !start.Equal(startDate) {
				t.Fatalf("window start moved: got %v, want %v", start, startDate)
			}
			if got := end.Format(DateFormat); got != tt.want {
				t.Fatalf("unexpected window end: got %q, want %q", got, tt.want)
			}
		})
	}
}

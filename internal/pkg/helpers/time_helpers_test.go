package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("36h", time.Hour); got != 36*time.Hour {
		t.Errorf("ParseDuration(36h) = %v", got)
	}
	if got := ParseDuration("garbage", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(garbage) = %v, want the default", got)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, time.April, 16, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, time.April, 16, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midweek rolls back to Sunday",
			time.Date(2025, time.April, 16, 14, 30, 0, 0, time.UTC), // Wednesday
			time.Date(2025, time.April, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			"Sunday is its own week start",
			time.Date(2025, time.April, 13, 23, 59, 0, 0, time.UTC),
			time.Date(2025, time.April, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			"Saturday rolls back six days",
			time.Date(2025, time.April, 12, 1, 0, 0, 0, time.UTC),
			time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			"week start can cross a month boundary",
			time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC), // Thursday
			time.Date(2025, time.April, 27, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2025, time.April, 16, 14, 30, 0, 0, time.UTC)
	want := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfMonth(in); !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}

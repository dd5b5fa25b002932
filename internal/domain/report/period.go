package report

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open aggregation interval [Start, End).
// An instant exactly equal to End belongs to the next window, never both.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Window counts and label layouts per granularity.
const (
	hourlyWindows  = 24
	dailyWindows   = 30
	monthlyWindows = 12
	yearlyWindows  = 5
)

// Windows produces the ordered, contiguous, non-overlapping sequence of
// windows for the given granularity, oldest first. The newest window is the
// one containing ref. Month and year steps use calendar arithmetic via
// time.Date normalization, so variable month lengths and leap years are
// handled exactly.
//
// An unrecognized granularity is a programming error and panics.
func Windows(g Granularity, ref time.Time) []TimeWindow {
	loc := ref.Location()

	var (
		count   int
		layout  string
		startAt func(i int) time.Time
	)

	switch g {
	case GranularityHourly:
		count = hourlyWindows
		layout = "15:04"
		anchor := time.Date(ref.Year(), ref.Month(), ref.Day(), ref.Hour(), 0, 0, 0, loc)
		startAt = func(i int) time.Time {
			return anchor.Add(time.Duration(i-(count-1)) * time.Hour)
		}
	case GranularityDaily:
		count = dailyWindows
		layout = "Jan 02"
		startAt = func(i int) time.Time {
			return time.Date(ref.Year(), ref.Month(), ref.Day()-(count-1)+i, 0, 0, 0, 0, loc)
		}
	case GranularityMonthly:
		count = monthlyWindows
		layout = "Jan 2006"
		startAt = func(i int) time.Time {
			return time.Date(ref.Year(), ref.Month()-time.Month(count-1)+time.Month(i), 1, 0, 0, 0, 0, loc)
		}
	case GranularityYearly:
		count = yearlyWindows
		layout = "2006"
		startAt = func(i int) time.Time {
			return time.Date(ref.Year()-(count-1)+i, time.January, 1, 0, 0, 0, 0, loc)
		}
	default:
		panic(fmt.Sprintf("report: unknown granularity %q", g))
	}

	windows := make([]TimeWindow, count)
	for i := range windows {
		start := startAt(i)
		// End is the next window's start, so contiguity holds exactly.
		windows[i] = TimeWindow{
			Start: start,
			End:   startAt(i + 1),
			Label: start.Format(layout),
		}
	}
	return windows
}

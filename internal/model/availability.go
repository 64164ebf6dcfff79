package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	var hour, minute int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFrom extracts the clock time of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At combines the clock time with the date of day.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

// Interval is a half-open availability window within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseInterval parses a "HH:MM-HH:MM" string. The end must be after the start.
func ParseInterval(s string) (Interval, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("invalid interval %q: expected HH:MM-HH:MM", s)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
	}

	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
	}

	if end <= start {
		return Interval{}, fmt.Errorf("invalid interval %q: end must be after start", s)
	}

	return Interval{Start: start, End: end}, nil
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// Contains reports whether [start, end] lies fully within the interval.
func (i Interval) Contains(start, end TimeOfDay) bool {
	return i.Start <= start && end <= i.End
}

// WeeklyAvailability maps a weekday to the ordered intervals during which an
// employee accepts appointments. Parsed and validated once at load time.
type WeeklyAvailability map[time.Weekday][]Interval

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeeklyAvailability converts the stored weekday-name → "HH:MM-HH:MM" list
// representation into typed intervals.
func ParseWeeklyAvailability(raw map[string][]string) (WeeklyAvailability, error) {
	availability := make(WeeklyAvailability, len(raw))

	for name, specs := range raw {
		weekday, ok := weekdayByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}

		intervals := make([]Interval, 0, len(specs))
		for _, spec := range specs {
			interval, err := ParseInterval(spec)
			if err != nil {
				return nil, fmt.Errorf("weekday %s: %w", name, err)
			}
			intervals = append(intervals, interval)
		}

		sort.Slice(intervals, func(a, b int) bool {
			return intervals[a].Start < intervals[b].Start
		})

		availability[weekday] = intervals
	}

	return availability, nil
}

// Raw converts the availability back to its storage representation.
func (w WeeklyAvailability) Raw() map[string][]string {
	raw := make(map[string][]string, len(w))
	for weekday, intervals := range w {
		specs := make([]string, 0, len(intervals))
		for _, interval := range intervals {
			specs = append(specs, interval.String())
		}
		raw[weekday.String()] = specs
	}
	return raw
}

// Intervals returns the configured intervals for a weekday. A missing weekday
// means the employee does not work that day.
func (w WeeklyAvailability) Intervals(weekday time.Weekday) []Interval {
	return w[weekday]
}

// Covers reports whether [start, end) lies fully within a single availability
// interval on start's weekday. Ranges that cross midnight are rejected.
func (w WeeklyAvailability) Covers(start, end time.Time) bool {
	if !end.After(start) {
		return false
	}

	// The availability model is date-independent within one day only.
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}

	startClock := TimeOfDayFrom(start)
	endClock := TimeOfDayFrom(end)

	for _, interval := range w[start.Weekday()] {
		if interval.Contains(startClock, endClock) {
			return true
		}
	}
	return false
}

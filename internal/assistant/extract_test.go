package assistant

import (
	"testing"
	"time"

	"github.com/smartsched/smartsched/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 15 2025 is a Sunday.
var testNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sanchez", Normalize("Sánchez"))
	assert.Equal(t, "nandu", Normalize("ÑANDÚ"))
	assert.Equal(t, "jose garcia", Normalize("José García"))
	assert.Equal(t, "", Normalize(""))
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		text  string
		want  time.Time
		found bool
	}{
		{"see you tomorrow", date(2025, time.June, 16), true},
		{"the day after tomorrow works", date(2025, time.June, 17), true},
		{"today if possible", date(2025, time.June, 15), true},
		{"sometime next week", date(2025, time.June, 22), true},
		{"on 15/06/2025 please", date(2025, time.June, 15), true},
		{"on 20/06", date(2025, time.June, 20), true},
		{"june 20 would be great", date(2025, time.June, 20), true},
		{"july 3", date(2025, time.July, 3), true},
		{"monday 23", date(2025, time.June, 23), true},
		{"on 32/06", time.Time{}, false},
		{"on 15/13", time.Time{}, false},
		{"15/13 or june 20", date(2025, time.June, 20), true},
		{"32/06, make it july 3", date(2025, time.July, 3), true},
		{"no date in here", time.Time{}, false},
	}

	for _, tt := range tests {
		got, found := ExtractDate(tt.text, testNow)
		require.Equal(t, tt.found, found, "text %q", tt.text)
		if tt.found {
			assert.Equal(t, tt.want, got, "text %q", tt.text)
		}
	}
}

func TestExtractDateRelativeBeatsAbsolute(t *testing.T) {
	got, found := ExtractDate("tomorrow, or maybe june 20", testNow)
	require.True(t, found)
	assert.Equal(t, date(2025, time.June, 16), got, "relative keywords are tried first")
}

func clock(hour, minute int) model.TimeOfDay {
	return model.TimeOfDay(hour*60 + minute)
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		text  string
		want  model.TimeOfDay
		found bool
	}{
		{"2pm", clock(14, 0), true},
		{"2 pm", clock(14, 0), true},
		{"12pm", clock(12, 0), true},
		{"10am", clock(10, 0), true},
		{"12am", clock(0, 0), true},
		{"14:30", clock(14, 30), true},
		{"09:15 sharp", clock(9, 15), true},
		{"at 2", clock(14, 0), true},
		{"at 10", clock(10, 0), true},
		{"9 o'clock", clock(9, 0), true},
		{"7 o'clock", clock(19, 0), true},
		{"no time here", 0, false},
	}

	for _, tt := range tests {
		got, found := ExtractTime(tt.text)
		require.Equal(t, tt.found, found, "text %q", tt.text)
		if tt.found {
			assert.Equal(t, tt.want, got, "text %q", tt.text)
		}
	}
}

func TestExtractTimePatternPriority(t *testing.T) {
	// The am/pm patterns outrank the HH:MM pattern.
	got, found := ExtractTime("2pm, or 14:30 if that's easier")
	require.True(t, found)
	assert.Equal(t, clock(14, 0), got)
}

func TestBareHourHeuristic(t *testing.T) {
	// 8-12 are taken as given, 1-7 are shifted to the afternoon.
	for hour, want := range map[int]model.TimeOfDay{
		8:  clock(8, 0),
		11: clock(11, 0),
		12: clock(12, 0),
		1:  clock(13, 0),
		7:  clock(19, 0),
	} {
		got, found := bareHour(hour)
		require.True(t, found, "hour %d", hour)
		assert.Equal(t, want, got, "hour %d", hour)
	}

	_, found := bareHour(0)
	assert.False(t, found)
	_, found = bareHour(13)
	assert.False(t, found)
}

func TestExtractClientName(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{"book it for John Smith please", "John Smith", true},
		{"client Maria Ortiz", "Maria Ortiz", true},
		{"the name is ana lopez", "Ana Lopez", true},
		{"I am José García", "José García", true},
		{"my name is pedro ruiz", "Pedro Ruiz", true},
		{"john smith", "John Smith", true},
		{"just one", "Just One", true},
		{"three words here", "", false},
		{"john smith!", "", false},
		{"john", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, found := ExtractClientName(tt.text)
		require.Equal(t, tt.found, found, "text %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestFindEmployeeIn(t *testing.T) {
	roster := []*model.Employee{
		{ID: 1, Name: "Laura Sanchez"},
		{ID: 2, Name: "Ana Torres"},
		{ID: 3, Name: "Ana Lopez"},
	}

	tests := []struct {
		text string
		want int64 // 0 means no match
	}{
		{"book me with Laura Sanchez tomorrow", 1},
		{"laura sánchez please", 1},
		{"laura", 1},
		{"ana torres", 2},
		{"ana", 2}, // ambiguous: roster order decides
		{"nobody known", 0},
		{"   ", 0},
	}

	for _, tt := range tests {
		got := FindEmployeeIn(tt.text, roster)
		if tt.want == 0 {
			assert.Nil(t, got, "text %q", tt.text)
			continue
		}
		require.NotNil(t, got, "text %q", tt.text)
		assert.Equal(t, tt.want, got.ID, "text %q", tt.text)
	}
}

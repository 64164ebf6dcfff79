package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/smartsched/smartsched/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The extractors are best-effort: they return ok=false instead of an error
// when nothing matches, and the first matching pattern in list order wins.

type relativeDate struct {
	keyword string
	days    int
}

// Ordered so that "day after tomorrow" is tried before "tomorrow".
var relativeDates = []relativeDate{
	{"day after tomorrow", 2},
	{"tomorrow", 1},
	{"today", 0},
	{"next week", 7},
}

var (
	dateFullPattern    = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dateShortPattern   = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
	dateWeekdayPattern = regexp.MustCompile(`(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday) (\d{1,2})`)
	dateJunePattern    = regexp.MustCompile(`june (\d{1,2})`)
	dateJulyPattern    = regexp.MustCompile(`july (\d{1,2})`)
)

func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if date.Day() != day || date.Month() != month {
		// time.Date silently normalizes overflow (e.g. June 31 → July 1).
		return time.Time{}, false
	}
	return date, true
}

// ExtractDate scans lower-cased text for a date. Relative keywords are tried
// first, then absolute patterns; the year defaults to now's year when omitted.
func ExtractDate(text string, now time.Time) (time.Time, bool) {
	text = strings.ToLower(text)

	for _, rel := range relativeDates {
		if strings.Contains(text, rel.keyword) {
			target := now.AddDate(0, 0, rel.days)
			return time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.Local), true
		}
	}

	// A pattern that matches but yields an invalid date does not end the
	// scan; later patterns still get their shot.
	if m := dateFullPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if date, ok := makeDate(year, time.Month(month), day); ok {
			return date, true
		}
	}

	if m := dateShortPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if date, ok := makeDate(now.Year(), time.Month(month), day); ok {
			return date, true
		}
	}

	if m := dateWeekdayPattern.FindStringSubmatch(text); m != nil {
		// Weekday plus a day number: the number names a day of the current
		// month; the weekday itself is not cross-checked.
		day, _ := strconv.Atoi(m[1])
		if date, ok := makeDate(now.Year(), now.Month(), day); ok {
			return date, true
		}
	}

	if m := dateJunePattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if date, ok := makeDate(now.Year(), time.June, day); ok {
			return date, true
		}
	}

	if m := dateJulyPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		if date, ok := makeDate(now.Year(), time.July, day); ok {
			return date, true
		}
	}

	return time.Time{}, false
}

var (
	timePMPattern     = regexp.MustCompile(`\b(\d{1,2})\s*pm\b`)
	timeAMPattern     = regexp.MustCompile(`\b(\d{1,2})\s*am\b`)
	timeClockPattern  = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	timeAtPattern     = regexp.MustCompile(`\bat (\d{1,2})\b`)
	timeOClockPattern = regexp.MustCompile(`(\d{1,2}) o'clock`)
)

// bareHour applies the afternoon heuristic for an hour with no am/pm marker:
// 8-12 are taken as given, 1-7 are assumed to mean the afternoon. A known
// heuristic limitation, not a correctness guarantee.
func bareHour(hour int) (model.TimeOfDay, bool) {
	switch {
	case hour >= 8 && hour <= 12:
		return model.TimeOfDay(hour * 60), true
	case hour >= 1 && hour < 8:
		return model.TimeOfDay((hour + 12) * 60), true
	default:
		return 0, false
	}
}

// ExtractTime scans lower-cased text for a time of day.
func ExtractTime(text string) (model.TimeOfDay, bool) {
	text = strings.ToLower(text)

	if m := timePMPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			if hour != 12 {
				hour += 12
			}
			return model.TimeOfDay(hour * 60), true
		}
		return 0, false
	}

	if m := timeAMPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			if hour == 12 {
				hour = 0
			}
			return model.TimeOfDay(hour * 60), true
		}
		return 0, false
	}

	if m := timeClockPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return model.TimeOfDay(hour*60 + minute), true
		}
		return 0, false
	}

	if m := timeAtPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return bareHour(hour)
	}

	if m := timeOClockPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return bareHour(hour)
	}

	return 0, false
}

// namePattern matches two name words, accented letters included.
const nameWords = `([A-Za-záéíóúñÁÉÍÓÚÑ]+ [A-Za-záéíóúñÁÉÍÓÚÑ]+)`

var clientNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for ` + nameWords),
	regexp.MustCompile(`(?i)client ` + nameWords),
	regexp.MustCompile(`(?i)name is ` + nameWords),
	regexp.MustCompile(`(?i)I am ` + nameWords),
	regexp.MustCompile(`(?i)my name is ` + nameWords),
}

var titleCaser = cases.Title(language.Und)

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

// ExtractClientName pulls a client name out of text using a fixed pattern
// list; when nothing matches and the whole message is exactly two alphabetic
// words, the message itself is taken as the name. The result is title-cased.
func ExtractClientName(text string) (string, bool) {
	for _, pattern := range clientNamePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return titleCaser.String(m[1]), true
		}
	}

	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 2 && isAlphabetic(words[0]) && isAlphabetic(words[1]) {
		return titleCaser.String(words[0] + " " + words[1]), true
	}

	return "", false
}

// FindEmployeeIn matches text against the roster with two-way substring
// containment over normalized names, so both "book with laura sanchez please"
// and a short reply like "laura" resolve. The first match in roster order
// wins; callers rely on the store's stable listing order for determinism.
func FindEmployeeIn(text string, roster []*model.Employee) *model.Employee {
	normalized := Normalize(strings.TrimSpace(text))
	if normalized == "" {
		return nil
	}

	for _, employee := range roster {
		name := Normalize(employee.Name)
		if strings.Contains(normalized, name) || strings.Contains(name, normalized) {
			return employee
		}
	}
	return nil
}
